package main

import (
	"fmt"
)

const complete = `#! /bin/bash

_conllu_autocomplete() {
    local cur opts
    COMPREPLY=()
    cur="${COMP_WORDS[COMP_CWORD]}"

    # the app prints the candidates for the words typed so far
    opts=$( "${COMP_WORDS[@]:0:$COMP_CWORD}" --generate-bash-completion 2>/dev/null )

    COMPREPLY=( $(compgen -W "${opts}" -- "${cur}") )
    return 0
}

complete -o bashdefault -o default -F _conllu_autocomplete conllu
`

func bashCommand(ui UI) error {
	_, err := fmt.Fprint(ui.Out, complete)
	return err
}
