package bookmarks

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMove(t *testing.T) {
	tests := []struct {
		name   string
		items  []Node
		source Position
		target Position
		want   Forest
	}{
		{
			name: "into a sibling folder",
			items: []Node{
				folder("deadmonger",
					item("Мысли", "_nofilter/22 January '25.md"),
					folder("lol", item("lol2", "_nofilter/27 January '25 ~ 2.md")),
				),
			},
			source: Position{0, 0},
			target: Position{1, 1, 0},
			want: Forest{
				folder("deadmonger",
					folder("lol",
						item("lol2", "_nofilter/27 January '25 ~ 2.md"),
						item("Мысли", "_nofilter/22 January '25.md"),
					),
				),
			},
		},
		{
			name: "second level to root below its parent",
			items: []Node{
				folder("проектики",
					folder("сторонние",
						item("Project Ada", "Разработка/12 июня '25.md"),
						item("o", "Разработка/o/задачи/СТАТУС.canvas"),
					),
					item("rover", "Разработка/rover/задачи/СТАТУС.canvas"),
				),
				item("LACIA", "Исследования/LACIA.md"),
				item("LLM", "Исследования/04 июня '25 ~ 2.md"),
				item("интерес", "_nofilter/04 июня '25.md"),
			},
			source: Position{1, 0},
			target: Position{3},
			want: Forest{
				folder("проектики",
					folder("сторонние",
						item("Project Ada", "Разработка/12 июня '25.md"),
						item("o", "Разработка/o/задачи/СТАТУС.canvas"),
					),
				),
				item("LACIA", "Исследования/LACIA.md"),
				item("LLM", "Исследования/04 июня '25 ~ 2.md"),
				item("rover", "Разработка/rover/задачи/СТАТУС.canvas"),
				item("интерес", "_nofilter/04 июня '25.md"),
			},
		},
		{
			name: "out of its parent",
			items: []Node{
				folder("проектики",
					folder("сторонние",
						item("Project Ada", "Ada.md"),
						item("o", "o.canvas"),
						item("weekl", "weekl.md"),
					),
					item("rover", "rover.canvas"),
				),
				item("LACIA", "LACIA.md"),
			},
			source: Position{1, 0, 0},
			target: Position{0, 0},
			want: Forest{
				folder("проектики",
					item("o", "o.canvas"),
					folder("сторонние",
						item("Project Ada", "Ada.md"),
						item("weekl", "weekl.md"),
					),
					item("rover", "rover.canvas"),
				),
				item("LACIA", "LACIA.md"),
			},
		},
		{
			name: "nested to nested",
			items: []Node{
				folder("A",
					folder("B", item("C", "C.md")),
					folder("D"),
				),
			},
			source: Position{0, 0, 0},
			target: Position{0, 1, 0},
			want: Forest{
				folder("A",
					folder("B"),
					folder("D", item("C", "C.md")),
				),
			},
		},
		{
			name:   "root folder into root folder",
			items:  []Node{folder("A"), folder("B")},
			source: Position{1},
			target: Position{0, 0},
			want:   Forest{folder("A", folder("B"))},
		},
		{
			name: "nested to root",
			items: []Node{
				folder("A", item("B", "B.md")),
				item("C", "C.md"),
			},
			source: Position{0, 0},
			target: Position{1},
			want: Forest{
				folder("A"),
				item("B", "B.md"),
				item("C", "C.md"),
			},
		},
		{
			name:   "reorder two siblings inside a folder",
			items:  []Node{folder("A", item("B", "B.md"), item("C", "C.md"))},
			source: Position{0, 0},
			target: Position{2, 0},
			want:   Forest{folder("A", item("C", "C.md"), item("B", "B.md"))},
		},
		{
			name:   "reorder two root siblings upward",
			items:  []Node{item("A", "A.md"), item("B", "B.md")},
			source: Position{1},
			target: Position{0},
			want:   Forest{item("B", "B.md"), item("A", "A.md")},
		},
		{
			name:   "into an empty folder",
			items:  []Node{folder("A"), item("B", "B.md")},
			source: Position{1},
			target: Position{0, 0},
			want:   Forest{folder("A", item("B", "B.md"))},
		},
		{
			name: "put the item up",
			items: []Node{
				folder("A"), item("B", "B.md"), item("C", "C.md"), item("D", "D.md"),
			},
			source: Position{2},
			target: Position{1},
			want: Forest{
				folder("A"), item("C", "C.md"), item("B", "B.md"), item("D", "D.md"),
			},
		},
		{
			name: "put the item down",
			items: []Node{
				folder("A"), item("B", "B.md"), item("C", "C.md"), item("D", "D.md"),
			},
			source: Position{2},
			target: Position{4},
			want: Forest{
				folder("A"), item("B", "B.md"), item("D", "D.md"), item("C", "C.md"),
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tree := NewTree(tt.items)
			require.NoError(t, tree.Move(tt.target, tt.source))
			assert.Equal(t, tt.want, tree.Items())
		})
	}
}

func TestMoveOntoOwnSlotIsNoop(t *testing.T) {
	cases := []struct {
		name   string
		source Position
		target Position
	}{
		{"only child", Position{0, 0}, Position{0, 0}},
		{"middle child", Position{1, 1}, Position{1, 1}},
		{"root", Position{0}, Position{0}},
		// The gap right after a node is the same slot once it is lifted.
		{"gap after itself", Position{1, 1}, Position{2, 1}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			tree := NewTree([]Node{
				folder("A", item("B", "B.md")),
				folder("E", item("F", "F.md"), item("G", "G.md"), item("H", "H.md")),
			})
			before := snapshot(t, tree)

			require.NoError(t, tree.Move(tc.target, tc.source))
			assert.JSONEq(t, before, snapshot(t, tree))
		})
	}
}

func TestMoveAcrossDepthsPreservesLeaves(t *testing.T) {
	deep := item("deep", "a/b/c/deep.md")
	deep.ID = 77
	tree := NewTree([]Node{
		folder("L1", folder("L2", folder("L3", deep, item("x", "x.md")))),
		item("top", "top.md"),
	})
	leaves := tree.LeafCount()

	require.NoError(t, tree.Move(Position{1}, Position{0, 0, 0, 0}))

	assert.Equal(t, leaves, tree.LeafCount())
	pos, ok := tree.Locate(77)
	require.True(t, ok)
	assert.Equal(t, Position{1}, pos)

	moved, err := tree.At(pos)
	require.NoError(t, err)
	assert.Same(t, deep, moved)

	l3, err := tree.At(Position{0, 0, 0})
	require.NoError(t, err)
	assert.Equal(t, []Node{item("x", "x.md")}, l3.(*Folder).Children)
}

func TestMoveRejectsInvalidInput(t *testing.T) {
	newTree := func() *Tree {
		return NewTree([]Node{
			folder("A", folder("B", item("C", "C.md"))),
			item("D", "D.md"),
		})
	}

	t.Run("folder into its own subtree", func(t *testing.T) {
		tree := newTree()
		before := snapshot(t, tree)
		err := tree.Move(Position{0, 0, 0}, Position{0})
		assert.True(t, errors.Is(err, ErrInvalidMove))
		assert.JSONEq(t, before, snapshot(t, tree))
	})

	t.Run("stale source", func(t *testing.T) {
		tree := newTree()
		before := snapshot(t, tree)
		err := tree.Move(Position{0}, Position{5})
		assert.True(t, errors.Is(err, ErrInvalidPosition))
		assert.JSONEq(t, before, snapshot(t, tree))
	})

	t.Run("target inside a leaf", func(t *testing.T) {
		tree := newTree()
		before := snapshot(t, tree)
		err := tree.Move(Position{0, 1}, Position{0, 0})
		assert.True(t, errors.Is(err, ErrInvalidPosition))
		assert.JSONEq(t, before, snapshot(t, tree))
	})
}

func TestNest(t *testing.T) {
	tree := NewTree([]Node{
		item("deadmonger", "_nofilter/22 January '25.md"),
		item("Мысли", "_nofilter/22 January '25.md"),
		folder("wlo",
			item("lom", "lom.md"),
			item("lol", "lol.md"),
		),
	})

	require.NoError(t, tree.Nest(Position{2}, Position{1}))
	assert.Equal(t, Forest{
		item("deadmonger", "_nofilter/22 January '25.md"),
		folder("wlo",
			item("Мысли", "_nofilter/22 January '25.md"),
			item("lom", "lom.md"),
			item("lol", "lol.md"),
		),
	}, tree.Items())

	err := tree.Nest(Position{0}, Position{1})
	assert.True(t, errors.Is(err, ErrInvalidMove), "nesting into a leaf")

	err = tree.Nest(Position{1}, Position{1})
	assert.True(t, errors.Is(err, ErrInvalidMove), "nesting a folder into itself")
}

func TestCreateFolder(t *testing.T) {
	t.Run("dragged after target", func(t *testing.T) {
		target := item("Мысли", "_nofilter/22 January '25.md")
		target.ID = 1737555153004
		tree := NewTree([]Node{
			target,
			item("lol2", "_nofilter/27 January '25 ~ 2.md"),
		}, WithClock(fixedClock(1800000000000)))

		f, pos, err := tree.CreateFolder("wizard", "🧙", Position{0}, Position{1})
		require.NoError(t, err)
		assert.Equal(t, Position{0}, pos)

		require.Equal(t, 1, tree.Len())
		assert.Same(t, f, tree.Items()[0])
		assert.Equal(t, "wizard", f.Name)
		assert.Equal(t, "🧙", f.Emojicon)
		assert.Equal(t, int64(1800000000000), f.ID)
		require.Len(t, f.Children, 2)
		assert.Equal(t, "Мысли", f.Children[0].Base().Name)
		assert.Equal(t, int64(1737555153004), f.Children[0].Base().ID)
		assert.Equal(t, "lol2", f.Children[1].Base().Name)
	})

	t.Run("dragged before target", func(t *testing.T) {
		tree := NewTree([]Node{
			item("A", "A.md"),
			item("B", "B.md"),
			item("C", "C.md"),
		})

		f, pos, err := tree.CreateFolder("pair", "", Position{2}, Position{0})
		require.NoError(t, err)
		assert.Equal(t, Position{1}, pos)
		assert.Equal(t, []Node{item("C", "C.md"), item("A", "A.md")}, f.Children)
		assert.Equal(t, "B", tree.Items()[0].Base().Name)
		assert.Same(t, f, tree.Items()[1])
	})

	t.Run("dragged from a folder that precedes the target's parent", func(t *testing.T) {
		tree := NewTree([]Node{
			item("X", "X.md"),
			folder("P", item("Q", "Q.md"), item("R", "R.md")),
		})

		_, pos, err := tree.CreateFolder("wrap", "", Position{1, 1}, Position{0})
		require.NoError(t, err)
		assert.Equal(t, Position{1, 0}, pos)
		assert.Equal(t, Forest{
			folder("P", item("Q", "Q.md"), &Folder{
				Meta:     Meta{ID: tree.Items()[0].(*Folder).Children[1].Base().ID, Name: "wrap"},
				Children: []Node{item("R", "R.md"), item("X", "X.md")},
			}),
		}, tree.Items())
	})

	t.Run("target folder holds the dragged node", func(t *testing.T) {
		tree := NewTree([]Node{
			folder("P", item("Q", "Q.md"), item("R", "R.md")),
		})

		f, _, err := tree.CreateFolder("outer", "", Position{0}, Position{1, 0})
		require.NoError(t, err)
		require.Len(t, f.Children, 2)
		assert.Equal(t, []Node{item("Q", "Q.md")}, f.Children[0].(*Folder).Children)
		assert.Equal(t, "R", f.Children[1].Base().Name)
	})

	t.Run("invalid", func(t *testing.T) {
		tree := NewTree([]Node{folder("A", item("B", "B.md")), item("C", "C.md")})
		before := snapshot(t, tree)

		_, _, err := tree.CreateFolder("x", "", Position{1}, Position{1})
		assert.True(t, errors.Is(err, ErrInvalidMove))

		_, _, err = tree.CreateFolder("x", "", Position{0, 0}, Position{0})
		assert.True(t, errors.Is(err, ErrInvalidMove))

		_, _, err = tree.CreateFolder("x", "", Position{3}, Position{1})
		assert.True(t, errors.Is(err, ErrInvalidPosition))

		assert.JSONEq(t, before, snapshot(t, tree))
	})
}

func TestCreateAndModifyItems(t *testing.T) {
	tree := NewTree([]Node{folder("A"), item("B", "B.md")}, WithClock(fixedClock(10)))

	leaf, err := tree.CreateItem(Position{0, 0}, "note", "📝", "notes/note.md")
	require.NoError(t, err)
	assert.Equal(t, int64(10), leaf.ID)
	assert.Same(t, leaf, tree.Find("notes/note.md"))

	path := "somewhere/here.md"
	require.NoError(t, tree.Modify(Position{1}, "B2", "✨", &path))
	b, err := tree.At(Position{1})
	require.NoError(t, err)
	assert.Equal(t, &Leaf{Meta: Meta{Name: "B2", Emojicon: "✨"}, Path: path}, b)

	require.NoError(t, tree.Modify(Position{0}, "renamed", "📂", nil))
	assert.Equal(t, "renamed", tree.Items()[0].Base().Name)

	err = tree.Modify(Position{0}, "renamed", "📂", &path)
	assert.True(t, errors.Is(err, ErrInvalidMove))

	removed, err := tree.Remove(Position{0})
	require.NoError(t, err)
	assert.Equal(t, "renamed", removed.Base().Name)
	assert.Equal(t, 1, tree.Len())
	assert.Equal(t, 1, tree.LeafCount())
}
