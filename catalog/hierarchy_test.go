package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleTree() Tree {
	return BuildTree(
		[]Category{
			{ID: "cat-fit", Name: "Fittings"},
			{ID: "cat-fas", Name: "Fasteners"},
		},
		[]SubCategory{
			{ID: "sub-screw", CategoryID: "cat-fas", Name: "Screws"},
			{ID: "sub-bolt", CategoryID: "cat-fas", Name: "Bolts"},
			{ID: "sub-elbow", CategoryID: "cat-fit", Name: "Elbows"},
			{ID: "sub-orphan", CategoryID: "missing", Name: "Orphan"},
		},
		[]ChildCategory{
			{ID: "child-dry", SubCategoryID: "sub-screw", Name: "Drywall"},
			{ID: "child-self", SubCategoryID: "sub-screw", Name: "Self Drilling"},
			{ID: "child-fittings", SubCategoryID: "sub-bolt", Name: "Fittings"},
		},
	)
}

func TestBuildTree(t *testing.T) {
	tree := sampleTree()

	require.Len(t, tree, 2)
	assert.Equal(t, "Fasteners", tree[0].Name)
	assert.Equal(t, "Fittings", tree[1].Name)

	require.Len(t, tree[0].SubCategories, 2)
	assert.Equal(t, "Bolts", tree[0].SubCategories[0].Name)
	assert.Equal(t, "Screws", tree[0].SubCategories[1].Name)

	screws := tree[0].SubCategories[1]
	require.Len(t, screws.ChildCategories, 2)
	assert.Equal(t, "Drywall", screws.ChildCategories[0].Name)
	assert.Equal(t, "Self Drilling", screws.ChildCategories[1].Name)

	cats, subs, children := tree.Counts()
	assert.Equal(t, 2, cats)
	assert.Equal(t, 3, subs, "orphan sub-category is not attached")
	assert.Equal(t, 3, children)
}

func TestTreeResolve(t *testing.T) {
	tree := sampleTree()

	tests := []struct {
		name   string
		token  string
		node   string
		level  Level
		expand string
		found  bool
	}{
		{"category by name any case", "FASTENERS", "cat-fas", LevelCategory, "cat-fas", true},
		{"category by id", "cat-fit", "cat-fit", LevelCategory, "cat-fit", true},
		{"sub-category by name", "screws", "sub-screw", LevelSubCategory, "cat-fas", true},
		{"child by name", "self drilling", "child-self", LevelChildCategory, "cat-fas", true},
		{"child by id", "child-dry", "child-dry", LevelChildCategory, "cat-fas", true},
		{"category wins over child with same name", "fittings", "cat-fit", LevelCategory, "cat-fit", true},
		{"unknown", "washers", "", LevelUnknown, "", false},
		{"blank", "  ", "", LevelUnknown, "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, ok := tree.Resolve(tt.token)
			assert.Equal(t, tt.found, ok)
			assert.Equal(t, tt.node, res.NodeID)
			assert.Equal(t, tt.level, res.Level)
			assert.Equal(t, tt.expand, res.ExpandCategoryID)
		})
	}
}

func TestTreeMatches(t *testing.T) {
	tree := sampleTree()

	t.Run("level one matches category name case-insensitively", func(t *testing.T) {
		assert.True(t, tree.Matches("cat-fas", ProductRef{Category: "fasteners"}))
		assert.True(t, tree.Matches("cat-fas", ProductRef{Category: "FASTENERS"}))
		assert.False(t, tree.Matches("cat-fas", ProductRef{Category: "Other", SubCategory: "sub-screw"}))
	})

	t.Run("level two matches sub-category id only", func(t *testing.T) {
		assert.True(t, tree.Matches("sub-screw", ProductRef{Category: "Other", SubCategory: "sub-screw"}))
		assert.False(t, tree.Matches("sub-screw", ProductRef{Category: "Fasteners", SubCategory: "sub-bolt"}))
		assert.False(t, tree.Matches("sub-screw", ProductRef{Category: "Fasteners", SubCategory: "Screws"}))
	})

	t.Run("level three matches child-category id only", func(t *testing.T) {
		assert.True(t, tree.Matches("child-dry", ProductRef{ChildCategory: "child-dry"}))
		assert.False(t, tree.Matches("child-dry", ProductRef{SubCategory: "sub-screw", ChildCategory: "child-self"}))
	})

	t.Run("unknown id applies no filter", func(t *testing.T) {
		assert.True(t, tree.Matches("nope", ProductRef{Category: "Anything"}))
	})
}

func TestTreeLocateAndURLToken(t *testing.T) {
	tree := sampleTree()

	node, ok := tree.Locate("child-self")
	require.True(t, ok)
	assert.Equal(t, LevelChildCategory, node.Level)
	assert.Equal(t, "cat-fas", node.CategoryID)
	assert.Equal(t, "sub-screw", node.SubCategoryID)

	assert.Equal(t, "self drilling", tree.URLToken("child-self"))
	assert.Equal(t, "fasteners", tree.URLToken("cat-fas"))
	assert.Equal(t, "missing-id", tree.URLToken("missing-id"))

	res, ok := tree.Resolve(tree.URLToken("sub-elbow"))
	require.True(t, ok)
	assert.Equal(t, "sub-elbow", res.NodeID)
}

func TestSubCategoriesOf(t *testing.T) {
	tree := sampleTree()

	subs := tree.SubCategoriesOf("Fasteners")
	require.Len(t, subs, 2)
	assert.Equal(t, "sub-bolt", subs[0].ID)
	assert.Nil(t, tree.SubCategoriesOf("fasteners"), "dropdown lookup is exact")
}

func TestLevelText(t *testing.T) {
	for _, l := range []Level{LevelCategory, LevelSubCategory, LevelChildCategory} {
		text, err := l.MarshalText()
		require.NoError(t, err)
		var back Level
		require.NoError(t, back.UnmarshalText(text))
		assert.Equal(t, l, back)
	}

	var l Level
	require.NoError(t, l.UnmarshalText([]byte("galaxy")))
	assert.Equal(t, LevelUnknown, l)
}
