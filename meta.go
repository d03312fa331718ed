package paginator

// Meta is a serializable snapshot of the engine's state, suitable for
// JSON/YAML output alongside a page of results.
type Meta struct {
	CurrentPage    int  `json:"current_page"     yaml:"current_page"`
	PageSize       int  `json:"page_size"        yaml:"page_size"`
	TotalPages     int  `json:"total_pages"      yaml:"total_pages"`
	TotalItems     int  `json:"total_items"      yaml:"total_items"`
	ItemIndexStart int  `json:"item_index_start" yaml:"item_index_start"`
	ItemIndexEnd   int  `json:"item_index_end"   yaml:"item_index_end"`
	HasPrevious    bool `json:"has_previous"     yaml:"has_previous"`
	HasNext        bool `json:"has_next"         yaml:"has_next"`
}

// Meta returns a snapshot of the current state.
func (s *State) Meta() Meta {
	return Meta{
		CurrentPage:    s.Page(),
		PageSize:       s.ItemsPerPage(),
		TotalPages:     s.TotalPages(),
		TotalItems:     s.TotalItems(),
		ItemIndexStart: s.ItemIndexStart(),
		ItemIndexEnd:   s.ItemIndexEnd(),
		HasPrevious:    s.HasPrevious(),
		HasNext:        s.HasNext(),
	}
}
