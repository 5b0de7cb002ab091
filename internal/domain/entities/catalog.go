package entities

// CatalogEntry is one quiz offered in the selection menu.
// SourceID is opaque to the quiz core and only passed to the loader.
type CatalogEntry struct {
	SourceID       string `mapstructure:"source_id" json:"sourceId"`
	NameKey        string `mapstructure:"name_key" json:"-"`
	DescriptionKey string `mapstructure:"description_key" json:"-"`
}
