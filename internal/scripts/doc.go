// Package scripts loads the two source archives into per-language maps of
// episode identifier to normalized text.
//
// The English side is a directory of NNN.txt plain-text files. The Chinese
// side is a directory of legacy .doc files, either one episode per file
// ("avatar 101.doc") or a contiguous range per file ("avatar 101-105.doc").
// Range documents are split at 第N回 episode headings; when the detected
// chunk count disagrees with the declared range the start number is trusted
// and the end recomputed from the document's actual structure.
package scripts
