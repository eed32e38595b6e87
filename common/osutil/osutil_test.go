package osutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/encoding/unicode"
)

const ceStartText = "DefaultVersion=8.3\r\n" +
	"ConfigurationTemplatesLocation=D:\\1C\\tmplts\r\n" +
	"CommonInfoBases=C:\\ibases.v8i\r\n" +
	"configurationtemplateslocation = \\\\server\\Шаблоны \r\n" +
	"ConfigurationTemplatesLocation=\r\n"

var wantLocations = []string{`D:\1C\tmplts`, `\\server\Шаблоны`}

func TestParseCEStartUTF8(t *testing.T) {
	assert.Equal(t, wantLocations, ParseCEStart([]byte(ceStartText)))
	assert.Equal(t, wantLocations, ParseCEStart(append([]byte{0xEF, 0xBB, 0xBF}, ceStartText...)))
}

func TestParseCEStartUTF16(t *testing.T) {
	for _, tc := range []struct {
		name string
		enc  unicode.Endianness
		bom  unicode.BOMPolicy
	}{
		{"le bom", unicode.LittleEndian, unicode.UseBOM},
		{"be bom", unicode.BigEndian, unicode.UseBOM},
		{"le no bom", unicode.LittleEndian, unicode.IgnoreBOM},
	} {
		t.Run(tc.name, func(t *testing.T) {
			data, err := unicode.UTF16(tc.enc, tc.bom).NewEncoder().Bytes([]byte(ceStartText))
			require.NoError(t, err)
			assert.Equal(t, wantLocations, ParseCEStart(data))
		})
	}
}

func TestParseCEStartEmpty(t *testing.T) {
	assert.Empty(t, ParseCEStart(nil))
	assert.Empty(t, ParseCEStart([]byte("DefaultVersion=8.3\n")))
}

func TestDefaultTemplatesDir(t *testing.T) {
	env := func(m map[string]string) func(string) string {
		return func(k string) string { return m[k] }
	}

	assert.Equal(t,
		filepath.Join(`C:\Users\u\AppData\Roaming`, "1C", "1cv8", "tmplts"),
		defaultTemplatesDir("windows", env(map[string]string{"APPDATA": `C:\Users\u\AppData\Roaming`}), "", ""))
	assert.Equal(t,
		filepath.Join("/work", "tmplts"),
		defaultTemplatesDir("windows", env(nil), "", "/work"))
	assert.Equal(t,
		filepath.Join("/home/u", ".1cv8", "1C", "1cv8", "tmplts"),
		defaultTemplatesDir("linux", env(nil), "/home/u", ""))
}

func TestCEStartConfigPaths(t *testing.T) {
	env := map[string]string{"APPDATA": "/a", "ALLUSERSPROFILE": "/p"}
	getenv := func(k string) string { return env[k] }

	assert.Equal(t, []string{
		filepath.Join("/a", "1C", "1CEStart", "1cestart.cfg"),
		filepath.Join("/p", "1C", "1CEStart", "1cestart.cfg"),
	}, ceStartConfigPaths("windows", getenv, ""))
	assert.Equal(t, []string{filepath.Join("/home/u", ".1C", "1cestart", "1cestart.cfg")},
		ceStartConfigPaths("darwin", getenv, "/home/u"))
	assert.Empty(t, ceStartConfigPaths("linux", getenv, ""))
}

func TestTemplatesLocationsFromHome(t *testing.T) {
	if os.PathSeparator != '/' {
		t.Skip("home layout differs on windows")
	}
	home := t.TempDir()
	t.Setenv("HOME", home)
	dir := filepath.Join(home, ".1C", "1cestart")
	require.NoError(t, os.MkdirAll(dir, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "1cestart.cfg"), []byte(ceStartText), 0644))

	assert.Equal(t, wantLocations, TemplatesLocationsFrom1CEStart())
}

func TestOpenCommand(t *testing.T) {
	name, _ := openCommand("windows", `C:\x`)
	assert.Equal(t, "explorer", name)
	name, _ = openCommand("darwin", "/x")
	assert.Equal(t, "open", name)
	name, args := openCommand("linux", "/x")
	assert.Equal(t, "xdg-open", name)
	assert.Equal(t, []string{"/x"}, args)
}

func TestOpenFolderMissing(t *testing.T) {
	err := OpenFolder(filepath.Join(t.TempDir(), "missing"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
