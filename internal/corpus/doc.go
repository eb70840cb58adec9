// Package corpus models the structured maamarim collection: the top-level
// collection_metadata object and the ordered list of documents with their
// metadata, content and glossary.
//
// Fields that are absent from the input decode to empty strings and empty
// slices, so downstream builders never have to distinguish "missing" from
// "empty". Each document also keeps the exact JSON it was decoded from so
// chunk and per-document exports reproduce it unchanged.
package corpus
