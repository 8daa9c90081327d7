package hawk

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildAndParseHeaderRoundTrip(t *testing.T) {
	attrs := []headerAttr{
		{"id", "dh37fgj492je"},
		{"ts", "1353832234"},
		{"nonce", "j4h3g2"},
		{"hash", "U4MKKSmiVxk37JCCrAVIjV/OhB3y+NdwoCr6RShbVkE="},
		{"ext", "some-app-data"},
		{"mac", "6R4rV5iE+NJ6qaVF/kJgVQ=="},
	}
	header, err := buildHeader(attrs)
	require.NoError(t, err)

	parsed, err := parseHeader(header)
	require.NoError(t, err)
	assert.Equal(t, "dh37fgj492je", parsed.ID)
	assert.Equal(t, "1353832234", parsed.TS)
	assert.Equal(t, "j4h3g2", parsed.Nonce)
	assert.True(t, parsed.HasHash)
	assert.Equal(t, "U4MKKSmiVxk37JCCrAVIjV/OhB3y+NdwoCr6RShbVkE=", parsed.Hash)
	assert.Equal(t, "some-app-data", parsed.Ext)
	assert.Equal(t, "6R4rV5iE+NJ6qaVF/kJgVQ==", parsed.MAC)
}

func TestParseHeaderExtQuoteCarveOut(t *testing.T) {
	raw := `Hawk id="a", ts="1", nonce="n", ext="quotes=""", mac="m"`
	parsed, err := parseHeader(raw)
	require.NoError(t, err)
	assert.Equal(t, `quotes=""`, parsed.Ext)
	assert.Equal(t, "m", parsed.MAC)
}

func TestParseHeaderExtNewlineCarveOut(t *testing.T) {
	raw := "Hawk id=\"a\", ts=\"1\", nonce=\"n\", ext=\"new line \n in the middle\", mac=\"m\""
	parsed, err := parseHeader(raw)
	require.NoError(t, err)
	assert.Equal(t, "new line \n in the middle", parsed.Ext)
}

func TestParseHeaderAppDlg(t *testing.T) {
	raw := `Hawk id="a", ts="1", nonce="n", mac="m", app="my-app", dlg="my-dlg"`
	parsed, err := parseHeader(raw)
	require.NoError(t, err)
	assert.True(t, parsed.HasApp)
	assert.Equal(t, "my-app", parsed.App)
	assert.True(t, parsed.HasDlg)
	assert.Equal(t, "my-dlg", parsed.Dlg)
}

func TestParseHeaderRejectsDlgWithoutApp(t *testing.T) {
	raw := `Hawk id="a", ts="1", nonce="n", mac="m", dlg="my-dlg"`
	_, err := parseHeader(raw)
	assertKind(t, err, KindBadHeaderValue)
}

func TestParseHeaderRejectsMissingScheme(t *testing.T) {
	_, err := parseHeader(`Bearer id="a", ts="1", nonce="n", mac="m"`)
	assertKind(t, err, KindBadHeaderValue)
}

func TestParseHeaderSchemeCaseInsensitive(t *testing.T) {
	_, err := parseHeader(`HAWK id="a", ts="1", nonce="n", mac="m"`)
	assert.NoError(t, err)
}

func TestParseHeaderRequiresCoreFields(t *testing.T) {
	cases := []string{
		`Hawk ts="1", nonce="n", mac="m"`,
		`Hawk id="a", nonce="n", mac="m"`,
		`Hawk id="a", ts="1", mac="m"`,
		`Hawk id="a", ts="1", nonce="n"`,
	}
	for _, raw := range cases {
		_, err := parseHeader(raw)
		assertKind(t, err, KindBadHeaderValue)
	}
}

func TestBuildHeaderRejectsForbiddenCharacters(t *testing.T) {
	_, err := buildHeader([]headerAttr{{"app", `has"quote`}})
	assertKind(t, err, KindBadHeaderValue)
}
