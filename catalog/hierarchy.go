package catalog

import (
	"sort"
	"strings"
)

// Level is a position in the three-level category hierarchy.
type Level int

const (
	LevelUnknown Level = iota
	LevelCategory
	LevelSubCategory
	LevelChildCategory
)

func (l Level) String() string {
	switch l {
	case LevelCategory:
		return "category"
	case LevelSubCategory:
		return "sub_category"
	case LevelChildCategory:
		return "child_category"
	default:
		return "unknown"
	}
}

func (l Level) MarshalText() ([]byte, error) {
	return []byte(l.String()), nil
}

func (l *Level) UnmarshalText(text []byte) error {
	switch string(text) {
	case "category":
		*l = LevelCategory
	case "sub_category":
		*l = LevelSubCategory
	case "child_category":
		*l = LevelChildCategory
	default:
		*l = LevelUnknown
	}
	return nil
}

// Flat rows as they come out of the three category tables.
type (
	Category struct {
		ID   string `json:"id"`
		Name string `json:"name"`
	}

	SubCategory struct {
		ID         string `json:"id"`
		CategoryID string `json:"category_id"`
		Name       string `json:"name"`
	}

	ChildCategory struct {
		ID            string `json:"id"`
		SubCategoryID string `json:"sub_category_id"`
		Name          string `json:"name"`
	}
)

type CategoryNode struct {
	Category
	SubCategories []SubCategoryNode `json:"sub_categories"`
}

type SubCategoryNode struct {
	SubCategory
	ChildCategories []ChildCategory `json:"child_categories"`
}

// Tree is the nested category hierarchy, every level ordered by name.
type Tree []CategoryNode

// Node describes where an id sits in the tree.
type Node struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	Level         Level  `json:"level"`
	CategoryID    string `json:"category_id"`
	SubCategoryID string `json:"sub_category_id,omitempty"`
}

// Resolution is the result of resolving a URL token against the tree.
// ExpandCategoryID is the top-level category that owns the matched node.
type Resolution struct {
	NodeID           string `json:"node_id"`
	Level            Level  `json:"level"`
	ExpandCategoryID string `json:"expand_category_id"`
}

// ProductRef carries the classification fields of a product.
type ProductRef struct {
	Category      string
	SubCategory   string
	ChildCategory string
}

// Criterion is the membership rule for a selected node: level 1 compares
// Value against the product category name case-insensitively, levels 2 and 3
// compare Value against the stored sub/child category id.
type Criterion struct {
	Level Level
	Value string
}

func byName[T any](items []T, name func(T) string) []T {
	out := make([]T, len(items))
	copy(out, items)
	sort.SliceStable(out, func(i, j int) bool {
		return strings.ToLower(name(out[i])) < strings.ToLower(name(out[j]))
	})
	return out
}

// BuildTree groups children under their parents by parent id after sorting
// each level by name. Rows whose parent is missing are left out.
func BuildTree(categories []Category, subs []SubCategory, children []ChildCategory) Tree {
	categories = byName(categories, func(c Category) string { return c.Name })
	subs = byName(subs, func(s SubCategory) string { return s.Name })
	children = byName(children, func(c ChildCategory) string { return c.Name })

	childrenBySub := make(map[string][]ChildCategory)
	for _, ch := range children {
		childrenBySub[ch.SubCategoryID] = append(childrenBySub[ch.SubCategoryID], ch)
	}

	subsByCategory := make(map[string][]SubCategoryNode)
	for _, s := range subs {
		node := SubCategoryNode{SubCategory: s, ChildCategories: childrenBySub[s.ID]}
		if node.ChildCategories == nil {
			node.ChildCategories = []ChildCategory{}
		}
		subsByCategory[s.CategoryID] = append(subsByCategory[s.CategoryID], node)
	}

	tree := make(Tree, 0, len(categories))
	for _, c := range categories {
		node := CategoryNode{Category: c, SubCategories: subsByCategory[c.ID]}
		if node.SubCategories == nil {
			node.SubCategories = []SubCategoryNode{}
		}
		tree = append(tree, node)
	}
	return tree
}

func tokenMatches(id, name, token string) bool {
	return id == token || strings.EqualFold(name, token)
}

// Resolve finds the node a URL token refers to. All categories are searched
// first, then every sub-category, then every child category; the first match
// wins. The token matches a node by case-insensitive name or exact id.
func (t Tree) Resolve(token string) (Resolution, bool) {
	token = strings.TrimSpace(token)
	if token == "" {
		return Resolution{}, false
	}

	for _, c := range t {
		if tokenMatches(c.ID, c.Name, token) {
			return Resolution{NodeID: c.ID, Level: LevelCategory, ExpandCategoryID: c.ID}, true
		}
	}
	for _, c := range t {
		for _, s := range c.SubCategories {
			if tokenMatches(s.ID, s.Name, token) {
				return Resolution{NodeID: s.ID, Level: LevelSubCategory, ExpandCategoryID: c.ID}, true
			}
		}
	}
	for _, c := range t {
		for _, s := range c.SubCategories {
			for _, ch := range s.ChildCategories {
				if tokenMatches(ch.ID, ch.Name, token) {
					return Resolution{NodeID: ch.ID, Level: LevelChildCategory, ExpandCategoryID: c.ID}, true
				}
			}
		}
	}
	return Resolution{}, false
}

// Locate reports the level of a node id, checking categories before
// sub-categories before child categories.
func (t Tree) Locate(id string) (Node, bool) {
	if id == "" {
		return Node{}, false
	}
	for _, c := range t {
		if c.ID == id {
			return Node{ID: c.ID, Name: c.Name, Level: LevelCategory, CategoryID: c.ID}, true
		}
	}
	for _, c := range t {
		for _, s := range c.SubCategories {
			if s.ID == id {
				return Node{ID: s.ID, Name: s.Name, Level: LevelSubCategory, CategoryID: c.ID, SubCategoryID: s.ID}, true
			}
		}
	}
	for _, c := range t {
		for _, s := range c.SubCategories {
			for _, ch := range s.ChildCategories {
				if ch.ID == id {
					return Node{ID: ch.ID, Name: ch.Name, Level: LevelChildCategory, CategoryID: c.ID, SubCategoryID: s.ID}, true
				}
			}
		}
	}
	return Node{}, false
}

// Criterion returns the membership rule for the node with the given id.
// Unknown ids yield false, meaning "no filter".
func (t Tree) Criterion(id string) (Criterion, bool) {
	node, ok := t.Locate(id)
	if !ok {
		return Criterion{}, false
	}
	if node.Level == LevelCategory {
		return Criterion{Level: LevelCategory, Value: node.Name}, true
	}
	return Criterion{Level: node.Level, Value: node.ID}, true
}

// Matches reports whether p belongs to the node id. Level 1 compares the
// product's free-text category with the category name; levels 2 and 3 compare
// the stored node ids. An unknown id matches everything.
func (t Tree) Matches(id string, p ProductRef) bool {
	crit, ok := t.Criterion(id)
	if !ok {
		return true
	}
	return crit.Matches(p)
}

func (c Criterion) Matches(p ProductRef) bool {
	switch c.Level {
	case LevelCategory:
		return strings.EqualFold(p.Category, c.Value)
	case LevelSubCategory:
		return p.SubCategory == c.Value
	case LevelChildCategory:
		return p.ChildCategory == c.Value
	default:
		return true
	}
}

// URLToken is the inverse of Resolve used to canonicalise links: the
// lower-cased node name, or the id itself when the node is unknown.
func (t Tree) URLToken(id string) string {
	node, ok := t.Locate(id)
	if !ok {
		return id
	}
	return strings.ToLower(node.Name)
}

// SubCategoriesOf returns the sub-categories of the category with exactly
// the given name, as the product form's dependent dropdown needs.
func (t Tree) SubCategoriesOf(categoryName string) []SubCategoryNode {
	for _, c := range t {
		if c.Name == categoryName {
			return c.SubCategories
		}
	}
	return nil
}

// Counts returns the number of nodes on each level.
func (t Tree) Counts() (categories, subs, children int) {
	for _, c := range t {
		categories++
		for _, s := range c.SubCategories {
			subs++
			children += len(s.ChildCategories)
		}
	}
	return categories, subs, children
}
