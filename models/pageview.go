// api/models/pageview.go
package models

// PageviewCounter is the only persisted entity: a flat per-path view count.
// Rows are created with views = 1 on the first report for a path and only
// ever incremented by the live system.
type PageviewCounter struct {
	Pathname string `json:"pathname"`
	Views    int64  `json:"views"`
}

// ImportRecord is one entry of a historical pageviews JSON dump, as consumed
// by the bulk importer. Note the field is "pageviews" in the dump but
// "views" in the table.
type ImportRecord struct {
	Pathname  string `json:"pathname"`
	Pageviews int64  `json:"pageviews"`
}
