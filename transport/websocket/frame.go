package websocket

import (
	"bufio"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
)

const (
	opText  byte = 0x1
	opClose byte = 0x8
	opPing  byte = 0x9
	opPong  byte = 0xA
)

const (
	closeProtocolError uint16 = 1002
	closeMessageTooBig uint16 = 1009
)

// maxMessageSize bounds a frame payload and a joined message.
const maxMessageSize = 4 << 10

var (
	errConnectionClosed = errors.New("connection closed by peer")
	errMessageTooLarge  = errors.New("message too large")
	errUnmaskedFrame    = errors.New("client frame is not masked")
)

// frame represents a WebSocket frame and its metadata.
type frame struct {
	isFin   bool
	opCode  byte
	masked  bool
	length  uint64
	payload []byte
}

func textFrame(payload []byte) frame {
	return frame{
		isFin:   true,
		opCode:  opText,
		length:  uint64(len(payload)),
		payload: payload,
	}
}

func closeFrame(code uint16) frame {
	payload := binary.BigEndian.AppendUint16(nil, code)

	return frame{
		isFin:   true,
		opCode:  opClose,
		length:  uint64(len(payload)),
		payload: payload,
	}
}

func writeFrame(writer *bufio.Writer, frameData frame) error {
	buf := make([]byte, 2, 10+len(frameData.payload))
	buf[0] |= frameData.opCode

	if frameData.isFin {
		buf[0] |= 0x80
	}

	switch {
	case frameData.length < 126:
		buf[1] |= byte(frameData.length)
	case frameData.length < 1<<16:
		buf[1] |= 126
		buf = binary.BigEndian.AppendUint16(buf, uint16(frameData.length))
	default:
		buf[1] |= 127
		buf = binary.BigEndian.AppendUint64(buf, frameData.length)
	}

	buf = append(buf, frameData.payload...)

	if _, err := writer.Write(buf); err != nil {
		return fmt.Errorf("failed to write frame: %w", err)
	}

	if err := writer.Flush(); err != nil {
		return fmt.Errorf("failed to flush buffer: %w", err)
	}

	return nil
}

// readFrame reads one frame, unmasking the payload when the peer masked it.
// Payloads over maxMessageSize are refused before anything is allocated.
func readFrame(reader io.Reader) (frame, error) {
	header := make([]byte, 2)
	if _, err := io.ReadFull(reader, header); err != nil {
		return frame{}, fmt.Errorf("failed to read header: %w", err)
	}

	maskBit := header[1] >> 7

	size, err := readPayloadLength(reader, header[1]&0x7f)
	if err != nil {
		return frame{}, err
	}

	if size > maxMessageSize {
		return frame{}, fmt.Errorf("%w: frame of %d bytes", errMessageTooLarge, size)
	}

	var mask []byte
	if maskBit == 1 {
		mask = make([]byte, 4)
		if _, err = io.ReadFull(reader, mask); err != nil {
			return frame{}, fmt.Errorf("failed to read mask: %w", err)
		}
	}

	payload := make([]byte, size)
	if _, err = io.ReadFull(reader, payload); err != nil {
		return frame{}, fmt.Errorf("failed to read payload: %w", err)
	}

	if mask != nil {
		for i := range payload {
			payload[i] ^= mask[i%4]
		}
	}

	return frame{
		isFin:   header[0]>>7 == 1,
		opCode:  header[0] & 0x0f,
		masked:  maskBit == 1,
		length:  size,
		payload: payload,
	}, nil
}

func readPayloadLength(reader io.Reader, payloadLen byte) (uint64, error) {
	switch payloadLen {
	case 126:
		length := make([]byte, 2)
		if _, err := io.ReadFull(reader, length); err != nil {
			return 0, fmt.Errorf("failed to read payload length: %w", err)
		}
		return uint64(binary.BigEndian.Uint16(length)), nil
	case 127:
		length := make([]byte, 8)
		if _, err := io.ReadFull(reader, length); err != nil {
			return 0, fmt.Errorf("failed to read payload length: %w", err)
		}
		return binary.BigEndian.Uint64(length), nil
	default:
		return uint64(payloadLen), nil
	}
}

// readMessage returns the payload of the next complete client message.
// Fragments are joined and control frames are answered in place. Oversized
// messages and unmasked frames close the connection with the matching code.
func readMessage(bufrw *bufio.ReadWriter) ([]byte, error) {
	var message []byte

	for {
		f, err := readFrame(bufrw)
		if errors.Is(err, errMessageTooLarge) {
			_ = writeFrame(bufrw.Writer, closeFrame(closeMessageTooBig))
			return nil, err
		}

		if err != nil {
			return nil, err
		}

		if !f.masked {
			_ = writeFrame(bufrw.Writer, closeFrame(closeProtocolError))
			return nil, errUnmaskedFrame
		}

		switch f.opCode {
		case opClose:
			_ = writeFrame(bufrw.Writer, frame{isFin: true, opCode: opClose})
			return nil, errConnectionClosed
		case opPing:
			if err = writeFrame(bufrw.Writer, frame{isFin: true, opCode: opPong, length: f.length, payload: f.payload}); err != nil {
				return nil, err
			}
			continue
		case opPong:
			continue
		}

		if len(message)+len(f.payload) > maxMessageSize {
			_ = writeFrame(bufrw.Writer, closeFrame(closeMessageTooBig))
			return nil, fmt.Errorf("%w: fragments exceed %d bytes", errMessageTooLarge, maxMessageSize)
		}

		message = append(message, f.payload...)
		if f.isFin {
			return message, nil
		}
	}
}
