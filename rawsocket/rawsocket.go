package rawsocket

// FrameKind distinguishes a WAMP message frame from the transport-level
// keepalive frames defined by the RawSocket protocol.
type FrameKind byte

const (
	FrameWAMP FrameKind = 0
	FramePing FrameKind = 1
	FramePong FrameKind = 2
)

const (
	magicByte = 0x7F

	// MaxMessageLength is the largest message size this package will
	// negotiate or accept, matching the RawSocket protocol's 16 MiB cap.
	MaxMessageLength = 16 * 1024 * 1024

	minMessageLength = 512 // 2^9, the smallest size the length nibble can express
)

// Handshake is the four-byte RawSocket handshake exchanged by both peers
// before any message frame.
type Handshake struct {
	MaxMessageLength int
	SerializerID     byte
}

// EncodeHandshake renders h as the four magic handshake bytes.
func EncodeHandshake(h Handshake) ([4]byte, error) {
	n, err := lengthNibble(h.MaxMessageLength)
	if err != nil {
		return [4]byte{}, err
	}
	if h.SerializerID > 0x0F {
		return [4]byte{}, errFormat("serializer id %d does not fit in 4 bits", h.SerializerID)
	}
	return [4]byte{magicByte, (n << 4) | h.SerializerID, 0x00, 0x00}, nil
}

// DecodeHandshake parses the four magic handshake bytes sent by a peer.
func DecodeHandshake(b [4]byte) (Handshake, error) {
	if b[0] != magicByte {
		return Handshake{}, errFormat("bad magic byte %#x", b[0])
	}
	n := (b[1] >> 4) & 0x0F
	serializerID := b[1] & 0x0F
	size, err := nibbleLength(n)
	if err != nil {
		return Handshake{}, err
	}
	return Handshake{MaxMessageLength: size, SerializerID: serializerID}, nil
}

func lengthNibble(size int) (byte, error) {
	if size < minMessageLength || size > MaxMessageLength {
		return 0, errFormat("max message length %d out of range [%d, %d]", size, minMessageLength, MaxMessageLength)
	}
	var n byte
	for cap := minMessageLength; cap < size; cap <<= 1 {
		n++
	}
	return n, nil
}

func nibbleLength(n byte) (int, error) {
	if n > 15 {
		return 0, errFormat("length nibble %d out of range [0, 15]", n)
	}
	return minMessageLength << n, nil
}

// EncodeFrame renders one message frame: a one-byte kind, a three-byte
// big-endian length, then payload.
func EncodeFrame(kind FrameKind, payload []byte) ([]byte, error) {
	if len(payload) > MaxMessageLength {
		return nil, errFormat("payload length %d exceeds max %d", len(payload), MaxMessageLength)
	}
	out := make([]byte, 4+len(payload))
	out[0] = byte(kind)
	putUint24(out[1:4], len(payload))
	copy(out[4:], payload)
	return out, nil
}

// FrameHeader is a decoded frame header: the kind and the payload length
// that follows it.
type FrameHeader struct {
	Kind   FrameKind
	Length int
}

// DecodeFrameHeader parses the fixed four-byte frame header preceding a
// message's payload.
func DecodeFrameHeader(b [4]byte) (FrameHeader, error) {
	kind := FrameKind(b[0])
	if kind != FrameWAMP && kind != FramePing && kind != FramePong {
		return FrameHeader{}, errFormat("unknown frame kind %d", b[0])
	}
	length := uint24(b[1:4])
	if length > MaxMessageLength {
		return FrameHeader{}, errFormat("frame length %d exceeds max %d", length, MaxMessageLength)
	}
	return FrameHeader{Kind: kind, Length: length}, nil
}

func putUint24(b []byte, v int) {
	b[0] = byte(v >> 16)
	b[1] = byte(v >> 8)
	b[2] = byte(v)
}

func uint24(b []byte) int {
	return int(b[0])<<16 | int(b[1])<<8 | int(b[2])
}
