// Package binding resolves dataset keys to widgets and keeps the two sides
// in sync.
//
// A Container is built once from a dataset and a widget collection: every
// leaf key is matched to a widget by exact name, by a Loader's override map,
// or by fuzzy closest-match, and wrapped in a Hook that knows how to read
// and write that widget's value. The container then offers LoadData
// (widgets ← dataset), SaveData/GetData (dataset ← widgets), and callback
// wiring for save-on-change.
package binding
