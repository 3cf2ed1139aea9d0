package cmd

import (
	"bytes"
	"context"
	"path/filepath"
	"strings"
	"testing"
	"time"

	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mattsolo1/rover/pkg/bookmarks"
	"github.com/mattsolo1/rover/pkg/service"
	"github.com/mattsolo1/rover/pkg/store"
)

func newTestService(t *testing.T) (*service.Service, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "data.json")
	logger, _ := logtest.NewNullLogger()
	ms := int64(1000)
	clock := func() time.Time { ms++; return time.UnixMilli(ms) }
	svc, err := service.New(context.Background(), &service.Config{DefaultEmojicon: "🔖"},
		store.NewFileStore(path), logger, bookmarks.WithClock(clock))
	require.NoError(t, err)
	return svc, path
}

func run(t *testing.T, svc *service.Service, args ...string) (string, error) {
	t.Helper()
	cmd := NewBookmarksCmd(&svc)
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(append(args, "--no-input"))
	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func names(nodes []bookmarks.Node) []string {
	var out []string
	for _, n := range nodes {
		out = append(out, n.Base().Name)
	}
	return out
}

func TestBookmarksCommands(t *testing.T) {
	svc, path := newTestService(t)

	for _, p := range []string{"a.md", "b.md", "c.md", "daily/note-one.md"} {
		_, err := run(t, svc, "add", p)
		require.NoError(t, err, p)
	}
	assert.Equal(t, []string{"A", "B", "C", "Note One"}, names(svc.Tree.Items()))

	_, err := run(t, svc, "add", "first.md", "--at", "0", "--name", "First", "--icon", "⭐")
	require.NoError(t, err)
	assert.Equal(t, []string{"First", "A", "B", "C", "Note One"}, names(svc.Tree.Items()))

	// drop "First" on the gap before "C"
	_, err = run(t, svc, "mv", "0", "3")
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "First", "C", "Note One"}, names(svc.Tree.Items()))

	_, err = run(t, svc, "wrap", "1", "0", "--name", "Pair")
	require.NoError(t, err)
	require.Equal(t, []string{"Pair", "First", "C", "Note One"}, names(svc.Tree.Items()))
	folder := svc.Tree.Items()[0].(*bookmarks.Folder)
	assert.Equal(t, []string{"A", "B"}, names(folder.Children))

	_, err = run(t, svc, "nest", "3", "0")
	require.NoError(t, err)
	assert.Equal(t, []string{"Note One", "A", "B"}, names(folder.Children))

	out, err := run(t, svc, "find", "b.md")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "0.2\t"), out)

	_, err = run(t, svc, "edit", "0.2", "--name", "Bee")
	require.NoError(t, err)
	_, err = run(t, svc, "edit", "0.2", "--path", "bee.md")
	require.NoError(t, err)
	leaf := folder.Children[2].(*bookmarks.Leaf)
	assert.Equal(t, "Bee", leaf.Name)
	assert.Equal(t, "bee.md", leaf.Path)

	_, err = run(t, svc, "rm", "0", "--yes")
	require.NoError(t, err)
	assert.Equal(t, []string{"First", "C"}, names(svc.Tree.Items()))

	// everything above was persisted
	reloaded, err := store.NewFileStore(path).Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"First", "C"}, names(reloaded.Bookmarks))
}

func TestBookmarksErrors(t *testing.T) {
	svc, _ := newTestService(t)
	_, err := run(t, svc, "add", "a.md")
	require.NoError(t, err)

	_, err = run(t, svc, "mv", "5", "0")
	assert.ErrorIs(t, err, bookmarks.ErrInvalidPosition)

	_, err = run(t, svc, "mv", "x", "0")
	assert.ErrorIs(t, err, bookmarks.ErrInvalidPosition)

	_, err = run(t, svc, "wrap", "0", "0")
	assert.Error(t, err, "wrap needs a folder name without a terminal")

	_, err = run(t, svc, "find", "missing.md")
	assert.Error(t, err)
}

func TestBookmarksListPlain(t *testing.T) {
	svc, _ := newTestService(t)
	_, err := run(t, svc, "add", "notes/plan.md", "--name", "Plan", "--icon", "🗺️")
	require.NoError(t, err)
	_, err = run(t, svc, "add", "todo.md", "--name", "Todo", "--icon", "✅")
	require.NoError(t, err)
	_, err = run(t, svc, "wrap", "1", "0", "--name", "Work", "--icon", "📁")
	require.NoError(t, err)

	out, err := run(t, svc, "ls")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 4)
	assert.Contains(t, lines[0], "POSITION")
	assert.Contains(t, lines[1], "📁 Work")
	assert.Contains(t, lines[2], "🗺️ Plan")
	assert.Contains(t, lines[2], "notes/plan.md")
	assert.True(t, strings.HasPrefix(lines[3], "0.1"), lines[3])

	out, err = run(t, svc, "ls", "--json")
	require.NoError(t, err)
	assert.Contains(t, out, `"path": "todo.md"`)
	assert.Contains(t, out, `"children": [`)
}

func TestRenderTree(t *testing.T) {
	var out bytes.Buffer
	renderTree(&out, []bookmarks.Node{
		&bookmarks.Folder{Meta: bookmarks.Meta{Name: "Work", Emojicon: "📁"}, Children: []bookmarks.Node{
			&bookmarks.Leaf{Meta: bookmarks.Meta{Name: "Plan"}, Path: "plan.md"},
		}},
		&bookmarks.Leaf{Meta: bookmarks.Meta{Name: "Todo", Emojicon: "✅"}, Path: "todo.md"},
	})
	assert.Contains(t, out.String(), "📁 Work")
	assert.Contains(t, out.String(), "Plan")
	assert.Contains(t, out.String(), "✅ Todo")
}
