package landmarks

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"PhysiqueGolang/pkg/pose"
)

// ISource is the client for the pose estimation sidecar. It accepts a
// raw camera frame and returns the detected landmark set.
type ISource interface {
	ProcessPoseFrame(frame []byte) (pose.Frame, error)
	IsConnected() bool
	Reconnect() error
	CloseConnections()
}

type poseClient struct {
	conn         *websocket.Conn
	mu           sync.Mutex
	pingInterval time.Duration
	readTimeout  time.Duration
	writeTimeout time.Duration
}

type inferenceResponse struct {
	Landmarks []pose.Landmark `json:"landmarks"`
	Error     string          `json:"error,omitempty"`
}

func NewPoseClient() ISource {
	client := &poseClient{
		pingInterval: 30 * time.Second,
		readTimeout:  10 * time.Second,
		writeTimeout: 5 * time.Second,
	}

	go client.connectInBackground()

	return client
}

func (c *poseClient) connectInBackground() {
	if err := c.Reconnect(); err != nil {
		log.Printf("Initial connection to pose estimation service failed: %v. Will retry on demand.", err)
	} else {
		log.Printf("Successfully connected to pose estimation service")
	}
}

func (c *poseClient) IsConnected() bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.conn != nil
}

func (c *poseClient) Reconnect() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.conn != nil {
		c.conn.Close()
		c.conn = nil
	}

	url := os.Getenv("AI_POSE_ESTIMATION_URL")
	if url == "" {
		return fmt.Errorf("URL for pose estimation service not configured")
	}

	log.Printf("Connecting to pose estimation service at %s", url)

	dialer := websocket.DefaultDialer
	dialer.HandshakeTimeout = 10 * time.Second

	conn, _, err := dialer.Dial(url, nil)
	if err != nil {
		return fmt.Errorf("failed to connect to %s: %w", url, err)
	}

	conn.SetPingHandler(func(appData string) error {
		err := conn.WriteControl(websocket.PongMessage, []byte(appData), time.Now().Add(c.writeTimeout))
		if err != nil {
			log.Printf("Error sending pong: %v", err)
		}
		return nil
	})

	c.conn = conn

	go c.keepAlive()

	return nil
}

func (c *poseClient) CloseConnections() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.conn != nil {
		c.conn.Close()
		c.conn = nil
	}
}

func (c *poseClient) keepAlive() {
	ticker := time.NewTicker(c.pingInterval)
	defer ticker.Stop()

	for range ticker.C {
		c.mu.Lock()

		conn := c.conn
		if conn == nil {
			c.mu.Unlock()
			return
		}

		err := conn.WriteControl(
			websocket.PingMessage,
			[]byte{},
			time.Now().Add(c.writeTimeout),
		)
		if err != nil {
			log.Printf("Ping failed for pose estimation service, marking connection as dead: %v", err)
			c.conn = nil
			conn.Close()
			c.mu.Unlock()

			return
		}

		c.mu.Unlock()
	}
}

func (c *poseClient) getConnection() (*websocket.Conn, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.conn == nil {
		return nil, fmt.Errorf("not connected to pose estimation service")
	}

	return c.conn, nil
}

// ProcessPoseFrame sends one binary camera frame to the sidecar and
// waits for the landmark set it detects. An empty landmark list means
// no body was found in the frame.
func (c *poseClient) ProcessPoseFrame(frame []byte) (pose.Frame, error) {
	conn, err := c.getConnection()
	if err != nil {
		if err := c.Reconnect(); err != nil {
			return nil, fmt.Errorf("cannot connect to pose estimation service: %w", err)
		}

		conn, err = c.getConnection()
		if err != nil {
			return nil, err
		}
	}

	c.mu.Lock()

	conn.SetWriteDeadline(time.Now().Add(c.writeTimeout))

	if err := conn.WriteMessage(websocket.BinaryMessage, frame); err != nil {
		c.conn = nil
		conn.Close()
		c.mu.Unlock()

		return nil, fmt.Errorf("error sending pose frame: %w", err)
	}

	conn.SetReadDeadline(time.Now().Add(c.readTimeout))

	c.mu.Unlock()

	_, message, err := conn.ReadMessage()
	if err != nil {
		c.mu.Lock()
		c.conn = nil
		conn.Close()
		c.mu.Unlock()

		return nil, fmt.Errorf("error reading pose message: %w", err)
	}

	c.mu.Lock()
	conn.SetReadDeadline(time.Time{})
	conn.SetWriteDeadline(time.Time{})
	c.mu.Unlock()

	var result inferenceResponse
	if err := json.Unmarshal(message, &result); err != nil {
		return nil, fmt.Errorf("error unmarshaling pose response: %w", err)
	}

	if result.Error != "" {
		return nil, fmt.Errorf("pose estimation service error: %s", result.Error)
	}

	return pose.Frame(result.Landmarks), nil
}
