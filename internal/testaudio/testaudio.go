// Package testaudio builds minimal ID3v2.3-tagged MP3 bodies for tests, so
// fixtures with known tags and cover art can be generated instead of checked
// in.
package testaudio

import "bytes"

// Tags describes the frames to embed.
type Tags struct {
	Title  string
	Artist string
	Album  string
	Genre  string
	Track  string // e.g. "3/12"
	Cover  []byte // raw image bytes for an APIC frame; nil for none
}

// MP3 returns an ID3v2.3 tag followed by a token of MPEG-looking data. The
// result is enough for tag parsers; it is not playable audio.
func MP3(t Tags) []byte {
	var frames bytes.Buffer
	writeText := func(id, value string) {
		if value == "" {
			return
		}
		body := append([]byte{0x00}, []byte(value)...) // ISO-8859-1 encoding marker
		writeFrame(&frames, id, body)
	}
	writeText("TIT2", t.Title)
	writeText("TPE1", t.Artist)
	writeText("TALB", t.Album)
	writeText("TCON", t.Genre)
	writeText("TRCK", t.Track)

	if len(t.Cover) > 0 {
		var body bytes.Buffer
		body.WriteByte(0x00)           // text encoding
		body.WriteString("image/jpeg") // MIME type
		body.WriteByte(0x00)           // terminator
		body.WriteByte(0x03)           // picture type: front cover
		body.WriteByte(0x00)           // empty description terminator
		body.Write(t.Cover)
		writeFrame(&frames, "APIC", body.Bytes())
	}

	var out bytes.Buffer
	out.WriteString("ID3")
	out.Write([]byte{0x03, 0x00, 0x00}) // version 2.3.0, no flags
	out.Write(synchsafe(frames.Len()))
	out.Write(frames.Bytes())
	out.Write([]byte{0xFF, 0xFB, 0x90, 0x00}) // MPEG frame sync filler
	return out.Bytes()
}

// writeFrame emits an ID3v2.3 frame: id, plain big-endian size, zero flags.
func writeFrame(w *bytes.Buffer, id string, body []byte) {
	w.WriteString(id)
	n := len(body)
	w.Write([]byte{byte(n >> 24), byte(n >> 16), byte(n >> 8), byte(n)})
	w.Write([]byte{0x00, 0x00})
	w.Write(body)
}

// synchsafe packs n into four 7-bit bytes, as the tag header requires.
func synchsafe(n int) []byte {
	return []byte{
		byte((n >> 21) & 0x7F),
		byte((n >> 14) & 0x7F),
		byte((n >> 7) & 0x7F),
		byte(n & 0x7F),
	}
}
