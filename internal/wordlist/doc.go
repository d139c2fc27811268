// Package wordlist reads newline-delimited dictionary files.
//
// A Source turns a dictionary file (or any io.Reader) into a lazy, single-pass
// sequence of lines. Scanning is lenient:
//   - "\n" and "\r\n" terminators are stripped
//   - lines that are not valid UTF-8 are skipped and counted, not reported
//   - a read error mid-file ends the sequence and is kept in ScanStats
//
// Only opening the file is fatal. Open wraps ErrOpen so callers can tell an
// unreadable dictionary apart from other failures:
//
//	src, err := wordlist.Open(wordlist.DefaultPath, wordlist.EncodingUTF8)
//	if err != nil {
//	    return err
//	}
//	defer src.Close()
//	for line := range src.Lines() {
//	    fmt.Println(line)
//	}
//	stats := src.Stats()
//
// Word lists in ISO-8859-1 are opened with EncodingLatin1; their bytes are
// transcoded to UTF-8 before lines are split.
//
// Tests and other callers that already hold the words in memory can use
// FromLines or NewSource instead of touching the filesystem.
package wordlist
