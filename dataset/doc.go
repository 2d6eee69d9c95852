// Package dataset reads survey data from disk.
//
// A data directory holds a question manifest (question_manifest.json) and
// one embed file per question and embedding method. The manifest lists, per
// question base, its answer columns, the question text, the encoded answer
// options ("1:yes | 2:no") and the embed file names. An embed file is
// {"meta": {...}, "data": [{"id", "name", "party", <columns>..., "x", "y", "z"}]}.
//
// Loading resolves file names with the same fallbacks the viewer always
// used, so older manifests without per-method entries keep working.
// CSV exports can be read with ReadCSV.
package dataset
