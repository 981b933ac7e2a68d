// Package ingest provides pipeline orchestration for adding documents to the corpus.
//
// The Pipeline type manages the ingestion workflow:
//   - Reading source files concurrently using a worker pool
//   - Skipping files whose extracted text is empty
//   - Storing the surviving documents with content-derived IDs
//
// A file with no extractable text is logged and skipped; it never fails the
// batch. The retrieval index is not touched here: it is rebuilt from stored
// documents the next time a search runs.
package ingest
