// Package domain contains the core entities and value objects of the
// application: cards located in text documents, review grades, and the
// per-card memory state tracked between sessions. It is independent of any
// storage, search, or terminal concern.
package domain
