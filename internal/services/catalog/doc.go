// Package catalog is the catalog browsing service: search and category
// filtering over the current tool catalog, with the selected category kept in
// the domain.PreferenceStore rather than in process state.
package catalog
