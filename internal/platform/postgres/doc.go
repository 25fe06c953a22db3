// Package postgres implements the store interfaces on PostgreSQL. The
// user aggregate is persisted as a single JSONB document: the engine is
// single-profile and the whole snapshot is replaced atomically on every
// state transition, so a document column is a better fit than a
// normalized schema.
package postgres
