// Package editor holds the editing session of a configuration document.
//
// A Session owns one document. Reads hand out copies, so validation and
// rendering always work on a snapshot. Export and Copy render the snapshot and
// pass it to a Saver or Clipboard; both are refused with ErrInvalidDocument
// while the document has validation issues, and with ErrBusy while another
// export or copy is still running.
package editor
