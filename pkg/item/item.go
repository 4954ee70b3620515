package item

// CatalogItem is an immutable default entry supplied by the catalog.
type CatalogItem struct {
	ID       ID     `json:"id" yaml:"id"`
	Category string `json:"category" yaml:"category"`
	Text     string `json:"text" yaml:"text"`
	Count    int    `json:"count" yaml:"count"`
	Source   string `json:"source,omitempty" yaml:"source,omitempty"`
	Benefit  string `json:"benefit,omitempty" yaml:"benefit,omitempty"`
}

// Override is a user edit that shadows a catalog item with the same id.
type Override struct {
	ID       ID     `json:"id"`
	Category string `json:"category"`
	Text     string `json:"text"`
	Count    int    `json:"count"`
	Source   string `json:"source,omitempty"`
	Benefit  string `json:"benefit,omitempty"`
}

// Custom is a user-created item. CustomCategoryID is zero unless the item
// belongs to a user-defined category.
type Custom struct {
	ID               ID     `json:"id"`
	Category         string `json:"category"`
	Text             string `json:"text"`
	Count            int    `json:"count"`
	Source           string `json:"source,omitempty"`
	Benefit          string `json:"benefit,omitempty"`
	CustomCategoryID ID     `json:"customCategoryId,omitempty"`
}

// CustomCategoryPrefix starts every category key that addresses a
// user-defined category. Catalog categories must not use it.
const CustomCategoryPrefix = "custom:"

// CustomCategory is a user-defined category. Deleting one does not touch the
// items inside it; callers cascade explicitly.
type CustomCategory struct {
	ID    ID     `json:"id"`
	Title string `json:"title"`
	Icon  string `json:"icon,omitempty"`
}

// Kind records which layer an effective item was resolved from.
type Kind int

const (
	// KindDefault is an untouched catalog item.
	KindDefault Kind = iota
	// KindOverridden is a catalog item replaced by a user override.
	KindOverridden
	// KindCustom is a user-created item.
	KindCustom
)

func (k Kind) String() string {
	switch k {
	case KindDefault:
		return "default"
	case KindOverridden:
		return "edited"
	case KindCustom:
		return "custom"
	default:
		return "unknown"
	}
}

// Effective is the single shape the merge produces, whatever layer the item
// came from.
type Effective struct {
	ID               ID     `json:"id"`
	Kind             Kind   `json:"kind"`
	Category         string `json:"category"`
	Text             string `json:"text"`
	Count            int    `json:"count"`
	Source           string `json:"source,omitempty"`
	Benefit          string `json:"benefit,omitempty"`
	CustomCategoryID ID     `json:"customCategoryId,omitempty"`
}

// FromCatalog resolves an untouched catalog item.
func FromCatalog(c CatalogItem) Effective {
	return Effective{
		ID:       c.ID,
		Kind:     KindDefault,
		Category: c.Category,
		Text:     c.Text,
		Count:    c.Count,
		Source:   c.Source,
		Benefit:  c.Benefit,
	}
}

// FromOverride resolves an overridden catalog item. The override replaces the
// catalog record wholesale.
func FromOverride(o Override) Effective {
	return Effective{
		ID:       o.ID,
		Kind:     KindOverridden,
		Category: o.Category,
		Text:     o.Text,
		Count:    o.Count,
		Source:   o.Source,
		Benefit:  o.Benefit,
	}
}

// FromCustom resolves a user-created item.
func FromCustom(c Custom) Effective {
	return Effective{
		ID:               c.ID,
		Kind:             KindCustom,
		Category:         c.Category,
		Text:             c.Text,
		Count:            c.Count,
		Source:           c.Source,
		Benefit:          c.Benefit,
		CustomCategoryID: c.CustomCategoryID,
	}
}

// OverrideOf seeds an override from a catalog item so edits start from the
// current default content.
func OverrideOf(c CatalogItem) Override {
	return Override{
		ID:       c.ID,
		Category: c.Category,
		Text:     c.Text,
		Count:    c.Count,
		Source:   c.Source,
		Benefit:  c.Benefit,
	}
}

// MarshalText encodes the kind by name.
func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}
