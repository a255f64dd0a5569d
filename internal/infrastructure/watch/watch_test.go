package watch

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFile_SignalsOnWrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "quadWarper.xml")
	require.NoError(t, os.WriteFile(path, []byte("<quad/>"), 0o644))

	f, err := NewFile(path, nil)
	require.NoError(t, err)
	defer f.Close()

	require.NoError(t, os.WriteFile(path, []byte("<quad></quad>"), 0o644))

	select {
	case <-f.Changes():
	case <-time.After(5 * time.Second):
		t.Fatal("no change signalled")
	}
}

func TestFile_IgnoresSiblings(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "quadWarper.xml")

	f, err := NewFile(path, nil)
	require.NoError(t, err)
	defer f.Close()

	require.NoError(t, os.WriteFile(filepath.Join(dir, "other.xml"), []byte("x"), 0o644))

	select {
	case <-f.Changes():
		t.Fatal("unexpected change for sibling file")
	case <-time.After(200 * time.Millisecond):
	}
}

func TestFile_MissingDirectory(t *testing.T) {
	_, err := NewFile(filepath.Join(t.TempDir(), "nope", "q.xml"), nil)
	assert.Error(t, err)
}

func TestFile_CloseTwice(t *testing.T) {
	f, err := NewFile(filepath.Join(t.TempDir(), "q.xml"), nil)
	require.NoError(t, err)

	assert.NoError(t, f.Close())
	assert.NoError(t, f.Close())
}
