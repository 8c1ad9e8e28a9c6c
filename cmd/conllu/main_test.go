package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const enDoc = "# sent_id = 1\n" +
	"# text = I haven't slept.\n" +
	"1\tI\tI\tPRON\tPRP\t_\t3\tnsubj\t_\t_\n" +
	"2-3\thaven't\t_\t_\t_\t_\t_\t_\t_\t_\n" +
	"2\thave\thave\tAUX\tVBP\t_\t4\taux\t_\t_\n" +
	"3\tn't\tnot\tPART\tRB\t_\t4\tadvmod\t_\t_\n" +
	"4\tslept\tsleep\tVERB\tVBN\t_\t0\troot\t_\tSpaceAfter=No\n" +
	"5\t.\t.\tPUNCT\t.\t_\t4\tpunct\t_\t_\n" +
	"\n" +
	"# sent_id = 2\n" +
	"1\tCats\tcat\tNOUN\tNNS\t_\t2\tnsubj\t_\t_\n" +
	"2\tsleep\tsleep\tVERB\tVBP\t_\t0\troot\t_\t_\n" +
	"\n"

const esDoc = "# sent_id = 1\n" +
	"1-2\tdámelo\t_\t_\t_\t_\t_\t_\t_\t_\n" +
	"1\tdá\tdar\tVERB\t_\t_\t0\troot\t_\t_\n" +
	"2\tmelo\tyo\tPRON\t_\t_\t1\tobj\t_\t_\n" +
	"\n"

func clearEnv(t *testing.T) {
	for _, k := range []string{"CONLLU_DOC_PATH", "CONLLU_LOGLEVEL", "CONLLU_COLOR"} {
		t.Setenv(k, "")
		os.Unsetenv(k)
	}
}

func docDir(t *testing.T) string {
	t.Helper()

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "en.conllu"), []byte(enDoc), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "es.conllu"), []byte(esDoc), 0644))
	return dir
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var out, errOut bytes.Buffer
	ui := UI{Out: &out, Err: &errOut}
	err := newApp(ui).Run(append([]string{"conllu", "--no-color"}, args...))
	return out.String(), err
}

func TestFmt(t *testing.T) {
	clearEnv(t)
	dir := docDir(t)

	out, err := run(t, "fmt", filepath.Join(dir, "en.conllu"))
	require.NoError(t, err)
	assert.Equal(t, enDoc, out)

	_, err = run(t, "fmt", filepath.Join(dir, "missing.conllu"))
	assert.Error(t, err)
}

func TestDoc(t *testing.T) {
	clearEnv(t)
	dir := docDir(t)

	out, err := run(t, "-d", dir, "doc")
	require.NoError(t, err)
	assert.Equal(t, "📖 0 en.conllu\n📖 1 es.conllu\n", out)

	out, err = run(t, "-d", dir, "doc", "--start", "1", "0")
	require.NoError(t, err)
	assert.Equal(t, "✍  1 Cats sleep\n", out)

	out, err = run(t, "-d", dir, "doc", "--format", "lemma", "0")
	require.NoError(t, err)
	assert.Equal(t, "✍  0 I have not sleep .\n✍  1 cat sleep\n", out)
}

func TestDocPathFromEnv(t *testing.T) {
	clearEnv(t)
	dir := docDir(t)
	t.Setenv("CONLLU_DOC_PATH", dir)

	out, err := run(t, "doc")
	require.NoError(t, err)
	assert.Contains(t, out, "es.conllu")
}

func TestSentenceAndStat(t *testing.T) {
	clearEnv(t)
	dir := docDir(t)

	out, err := run(t, "-d", dir, "sentence", "0", "0")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "✍  0 I haven't slept.\n\n"))
	assert.Contains(t, out, "DEPREL")

	_, err = run(t, "-d", dir, "sentence", "0", "9")
	assert.Error(t, err)

	out, err = run(t, "-d", dir, "stat", "0")
	require.NoError(t, err)
	assert.Contains(t, out, "Num sentences 2, num words 7, num multiword tokens 1, words per sentence 3.50\n")

	out, err = run(t, "-d", dir, "stat", "0", "1")
	require.NoError(t, err)
	assert.Contains(t, out, "Num sentences 1, num words 2")
}

func TestCollapseExpand(t *testing.T) {
	clearEnv(t)
	dir := docDir(t)
	path := filepath.Join(dir, "es.conllu")

	out, err := run(t, "-d", dir, "collapse", "1", "0", "1")
	require.NoError(t, err)
	assert.Equal(t, "# sent_id = 1\n1\tdámelo\t_\t_\t_\t_\t_\t_\t_\t_\n\n", out)

	written, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, out, string(written))

	_, err = run(t, "-d", dir, "expand", "1", "0", "1", "2")
	require.NoError(t, err)

	written, err = os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "# sent_id = 1\n"+
		"1-2\tdámelo\t_\t_\t_\t_\t_\t_\t_\t_\n"+
		"1\tdá\t_\t_\t_\t_\t_\t_\t_\t_\n"+
		"2\tmelo\t_\t_\t_\t_\t_\t_\t_\t_\n\n", string(written))

	_, err = run(t, "-d", dir, "expand", "1", "0", "1", "9")
	assert.Error(t, err)
}

func TestLemma(t *testing.T) {
	clearEnv(t)
	dir := docDir(t)

	out, err := run(t, "-d", dir, "lemma", "--no-prefix", "sleep")
	require.NoError(t, err)
	assert.Equal(t, "I haven't slept.\nCats sleep\n", out)

	out, err = run(t, "-d", dir, "lemma", "cat", "sleep")
	require.NoError(t, err)
	assert.Contains(t, out, "Cats sleep")
	assert.Contains(t, out, "en.conllu")
	assert.NotContains(t, out, "slept")

	out, err = run(t, "-d", dir, "lemma", "--doc", "1", "--no-prefix", "dar")
	require.NoError(t, err)
	assert.Equal(t, "dámelo\n", out)

	out, err = run(t, "-d", dir, "lemma", "--doc", "0", "dar")
	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestImportExport(t *testing.T) {
	clearEnv(t)
	dir := docDir(t)
	db := filepath.Join(t.TempDir(), "docs.db")
	target := filepath.Join(t.TempDir(), "out")

	out, err := run(t, "import", "--from", dir, "--to", db)
	require.NoError(t, err)
	assert.Contains(t, out, "Successfully imported 2 docs")

	out, err = run(t, "-d", db, "lemma", "--limit", "1", "--no-prefix", "sleep")
	require.NoError(t, err)
	assert.Equal(t, "I haven't slept.\nCats sleep\n", out)

	_, err = run(t, "-d", db, "collapse", "2", "0", "1")
	require.NoError(t, err)

	out, err = run(t, "export", "--from", db, "--to", target)
	require.NoError(t, err)
	assert.Contains(t, out, "Successfully exported 2 docs")

	en, err := os.ReadFile(filepath.Join(target, "en.conllu"))
	require.NoError(t, err)
	assert.Equal(t, enDoc, string(en))

	es, err := os.ReadFile(filepath.Join(target, "es.conllu"))
	require.NoError(t, err)
	assert.Equal(t, "# sent_id = 1\n1\tdámelo\t_\t_\t_\t_\t_\t_\t_\t_\n\n", string(es))
}

func TestJSON(t *testing.T) {
	clearEnv(t)
	dir := docDir(t)

	out, err := run(t, "-d", dir, "json", "0", "1")
	require.NoError(t, err)

	var sentences []map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(out), &sentences))
	require.Len(t, sentences, 1)
	assert.Len(t, sentences[0]["tokens"], 2)
}

func TestErrors(t *testing.T) {
	clearEnv(t)

	_, err := run(t, "doc")
	assert.ErrorIs(t, err, errNoDocPath)

	_, err = run(t, "-d", filepath.Join(t.TempDir(), "nope"), "doc")
	assert.Error(t, err)

	_, err = run(t, "-d", docDir(t), "sentence", "x", "0")
	assert.Error(t, err)

	_, err = run(t, "import", "--from", docDir(t))
	assert.Error(t, err)
}

func TestVersionAndBash(t *testing.T) {
	clearEnv(t)

	out, err := run(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "conllu version dev (commit: none)\n", out)

	out, err = run(t, "bash")
	require.NoError(t, err)
	assert.Contains(t, out, "complete -o bashdefault")
}
