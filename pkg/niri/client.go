package niri

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"os"
)

var (
	ErrNotRunning         = errors.New("niri might not be running")
	ErrUnexpectedResponse = errors.New("unexpected response from niri")
)

// Client holds one connection to the niri IPC socket. Every exchange is a
// single JSON request line answered by a single JSON reply line.
type Client struct {
	conn   net.Conn
	reader *bufio.Reader
}

func Connect() (*Client, error) {
	socketPath, err := GetSocketPath()
	if err != nil {
		return nil, fmt.Errorf("get socket path: %w", err)
	}

	conn, err := net.Dial("unix", socketPath)
	if err != nil {
		return nil, fmt.Errorf("dial: %w", err)
	}

	return &Client{conn: conn, reader: bufio.NewReader(conn)}, nil
}

func GetSocketPath() (string, error) {
	path := os.Getenv("NIRI_SOCKET")
	if path == "" {
		return "", fmt.Errorf("NIRI_SOCKET is not set, %w", ErrNotRunning)
	}

	return path, nil
}

func (c *Client) Close() error {
	return c.conn.Close()
}

// LayoutNames asks niri for the configured keyboard layouts and returns
// their XKB names in order.
func (c *Client) LayoutNames() ([]string, error) {
	raw, err := c.send("KeyboardLayouts")
	if err != nil {
		return nil, err
	}

	var resp struct {
		KeyboardLayouts *KeyboardLayouts `json:"KeyboardLayouts"`
	}
	if err := json.Unmarshal(raw, &resp); err != nil || resp.KeyboardLayouts == nil {
		return nil, fmt.Errorf("decode keyboard layouts: %w", ErrUnexpectedResponse)
	}

	return resp.KeyboardLayouts.Names, nil
}

// SwitchLayout asks niri to activate the layout at idx.
func (c *Client) SwitchLayout(idx int) error {
	_, err := c.send(actionRequest{Action: action{
		SwitchLayout: &switchLayoutAction{Layout: layoutSwitchTarget{Index: uint8(idx)}},
	}})
	if err != nil {
		return fmt.Errorf("switch layout: %w", err)
	}

	return nil
}

func (c *Client) send(request any) (json.RawMessage, error) {
	payload, err := json.Marshal(request)
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}
	payload = append(payload, '\n')

	if _, err := c.conn.Write(payload); err != nil {
		return nil, fmt.Errorf("write to niri socket: %w", err)
	}

	line, err := c.reader.ReadString('\n')
	if err != nil && len(line) == 0 {
		return nil, fmt.Errorf("read from niri socket: %w", err)
	}

	var rep reply
	if err := json.Unmarshal([]byte(line), &rep); err != nil {
		return nil, fmt.Errorf("unmarshal reply: %w", err)
	}
	if rep.Err != nil {
		return nil, fmt.Errorf("niri: %s", *rep.Err)
	}
	if rep.Ok == nil {
		return nil, fmt.Errorf("reply has neither Ok nor Err: %w", ErrUnexpectedResponse)
	}

	return rep.Ok, nil
}
