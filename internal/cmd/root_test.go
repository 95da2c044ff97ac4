package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/harrison/zindex-tree/internal/config"
	"github.com/harrison/zindex-tree/internal/logger"
	"github.com/harrison/zindex-tree/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeFiles creates files under dir from a relative-path → content map.
func writeFiles(t *testing.T, dir string, files map[string]string) {
	t.Helper()
	for name, content := range files {
		path := filepath.Join(dir, filepath.FromSlash(name))
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	}
}

// executeRoot runs the root command with args and returns stdout, stderr and the error.
func executeRoot(t *testing.T, args ...string) (string, string, error) {
	t.Helper()

	rootCmd := NewRootCommand()
	stdout := new(bytes.Buffer)
	stderr := new(bytes.Buffer)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)
	rootCmd.SetArgs(args)

	err := rootCmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestRootCommand_EndToEnd(t *testing.T) {
	tmpDir := t.TempDir()
	writeFiles(t, tmpDir, map[string]string{
		"a.tsx": "export const A = () => <div style={{ zIndex: 5 }} />;\n",
		"b.css": ".overlay { z-index: 50; }\n",
	})

	stdout, stderr, err := executeRoot(t, tmpDir)
	require.NoError(t, err)
	assert.Empty(t, stderr)

	want := "\nZ-Index Tree:\n=============\n" +
		"z-5\n" +
		"  ├─ File: " + filepath.Join(tmpDir, "a.tsx") + "\n" +
		"  └─ Line: 1\n" +
		"\n"
	assert.Equal(t, want, stdout)
}

func TestRootCommand_PrunedDirectories(t *testing.T) {
	tmpDir := t.TempDir()
	writeFiles(t, tmpDir, map[string]string{
		"src/app.ts":                  `const cls = "z-20";`,
		".git/x.ts":                   `const cls = "z-[999]";`,
		"node_modules/y.js":           `const cls = "z-[998]";`,
		"packages/node_modules/z.jsx": `const cls = "z-[997]";`,
		".hidden.ts":                  `const cls = "z-[996]";`,
	})

	stdout, _, err := executeRoot(t, tmpDir)
	require.NoError(t, err)

	assert.Contains(t, stdout, "z-20")
	assert.NotContains(t, stdout, "x.ts")
	assert.NotContains(t, stdout, "y.js")
	assert.NotContains(t, stdout, "z.jsx")
	assert.NotContains(t, stdout, ".hidden.ts")
	assert.NotContains(t, stdout, "z-99")
}

func TestRootCommand_SortAcrossFiles(t *testing.T) {
	tmpDir := t.TempDir()
	writeFiles(t, tmpDir, map[string]string{
		"a.ts": `"z-10"`,
		"b.ts": `"z-[999]"`,
		"c.ts": "zIndex: 10\nz-index: 1\n",
	})

	stdout, _, err := executeRoot(t, "--format", "json", tmpDir)
	require.NoError(t, err)

	assert.JSONEq(t, `[
		{"file_path": "`+filepath.Join(tmpDir, "b.ts")+`", "z_index": "999", "line_number": 1},
		{"file_path": "`+filepath.Join(tmpDir, "a.ts")+`", "z_index": "10", "line_number": 1},
		{"file_path": "`+filepath.Join(tmpDir, "c.ts")+`", "z_index": "10", "line_number": 1},
		{"file_path": "`+filepath.Join(tmpDir, "c.ts")+`", "z_index": "1", "line_number": 2}
	]`, stdout)
}

func TestRootCommand_SymlinkedRoot(t *testing.T) {
	target := t.TempDir()
	writeFiles(t, target, map[string]string{"a.tsx": `<div className="z-[50]" />`})

	link := filepath.Join(t.TempDir(), "src")
	if err := os.Symlink(target, link); err != nil {
		t.Skipf("symlinks not supported: %v", err)
	}

	stdout, stderr, err := executeRoot(t, link)
	require.NoError(t, err)
	assert.Empty(t, stderr)
	assert.Contains(t, stdout, "z-50")
	assert.Contains(t, stdout, "  ├─ File: "+filepath.Join(link, "a.tsx")+"\n")
}

func TestRootCommand_FileFailureIsNotFatal(t *testing.T) {
	tmpDir := t.TempDir()
	writeFiles(t, tmpDir, map[string]string{
		"bad.js":  "z-1\n\xff\xfe\n",
		"good.ts": "z-[42]\n",
	})

	stdout, stderr, err := executeRoot(t, tmpDir)
	require.NoError(t, err)

	badPath := filepath.Join(tmpDir, "bad.js")
	assert.Equal(t, "Error scanning "+badPath+": failed to read file: "+badPath+": stream did not contain valid UTF-8\n", stderr)
	assert.Contains(t, stdout, "z-42")
	assert.NotContains(t, stdout, "bad.js")
}

func TestRootCommand_Idempotent(t *testing.T) {
	tmpDir := t.TempDir()
	writeFiles(t, tmpDir, map[string]string{
		"a.tsx":         `<div className="z-10" style={{ zIndex: 3 }} />`,
		"lib/b.js":      "el.style.zIndex = 1;\nconst s = { zIndex: 7 };\n",
		"lib/c/d.jsx":   `<Modal className="z-[60]" />`,
		"lib/c/e.ts":    "// z-index: 10\n",
		"styles/f.scss": "z-index: 100;",
	})

	first, _, err := executeRoot(t, tmpDir)
	require.NoError(t, err)
	second, _, err := executeRoot(t, tmpDir)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.NotContains(t, first, "z-100")
}

func TestRootCommand_NoMatches(t *testing.T) {
	tmpDir := t.TempDir()
	writeFiles(t, tmpDir, map[string]string{"a.ts": "export {};\n"})

	stdout, stderr, err := executeRoot(t, tmpDir)
	require.NoError(t, err)
	assert.Equal(t, "\nZ-Index Tree:\n=============\n", stdout)
	assert.Empty(t, stderr)
}

func TestRootCommand_YAML(t *testing.T) {
	tmpDir := t.TempDir()
	writeFiles(t, tmpDir, map[string]string{"a.ts": `"z-[5]"`})

	stdout, _, err := executeRoot(t, "--format=yaml", tmpDir)
	require.NoError(t, err)
	assert.Contains(t, stdout, "- file_path: "+filepath.Join(tmpDir, "a.ts"))
	assert.Contains(t, stdout, "line_number: 1")
}

func TestRootCommand_Errors(t *testing.T) {
	tmpDir := t.TempDir()
	filePath := filepath.Join(tmpDir, "file.ts")
	require.NoError(t, os.WriteFile(filePath, []byte("z-1"), 0644))

	tests := []struct {
		name      string
		args      []string
		wantErr   string
		wantFatal bool
	}{
		{name: "missing argument", args: nil, wantErr: "accepts 1 arg(s)"},
		{name: "too many arguments", args: []string{tmpDir, tmpDir}, wantErr: "accepts 1 arg(s)"},
		{name: "root does not exist", args: []string{filepath.Join(tmpDir, "nope")}, wantErr: "failed to access directory", wantFatal: true},
		{name: "root is a file", args: []string{filePath}, wantErr: "path is not a directory", wantFatal: true},
		{name: "unknown format", args: []string{"--format", "xml", tmpDir}, wantErr: "invalid configuration"},
		{name: "unknown log level", args: []string{"--log-level", "loud", tmpDir}, wantErr: "invalid configuration"},
		{name: "unknown flag", args: []string{"--watch", tmpDir}, wantErr: "unknown flag"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stdout, _, err := executeRoot(t, tt.args...)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
			assert.Equal(t, tt.wantFatal, models.IsFatal(err))
			assert.Empty(t, stdout)
		})
	}
}

func TestRootCommand_Version(t *testing.T) {
	stdout, _, err := executeRoot(t, "--version")
	require.NoError(t, err)
	assert.Contains(t, stdout, Version)
}

func TestRun_Summary(t *testing.T) {
	tmpDir := t.TempDir()
	writeFiles(t, tmpDir, map[string]string{
		"a.ts":   "z-1\nz-2\n",
		"b.tsx":  "nothing here\n",
		"c.js":   "\xff",
		"d.json": `{"zIndex": 4}`,
	})

	cfg := config.DefaultConfig()
	cfg.Root = tmpDir
	stderr := new(bytes.Buffer)

	summary, err := Run(cfg, new(bytes.Buffer), logger.NewConsoleLogger(stderr, "info"), false)
	require.NoError(t, err)
	assert.Equal(t, &Summary{FilesScanned: 2, FilesFailed: 1, Records: 2}, summary)
	assert.Contains(t, stderr.String(), "Error scanning")
	assert.Contains(t, stderr.String(), "scanned 2 files (1 failed), found 2 declarations")
}

func TestReportColor_OptIn(t *testing.T) {
	cfg := config.DefaultConfig()
	assert.False(t, reportColor(cfg, os.Stdout), "plain output unless --color is given")
	assert.False(t, reportColor(cfg, new(bytes.Buffer)))

	cfg.Color = true
	assert.False(t, reportColor(cfg, new(bytes.Buffer)), "never color a non-terminal")
}

func TestRootCommand_ColorFlagOnPipeIsPlain(t *testing.T) {
	tmpDir := t.TempDir()
	writeFiles(t, tmpDir, map[string]string{"a.ts": `"z-3"`})

	stdout, _, err := executeRoot(t, "--color", tmpDir)
	require.NoError(t, err)
	assert.NotContains(t, stdout, "\x1b[")
	assert.Contains(t, stdout, "z-3\n")
}
