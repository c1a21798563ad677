package scanHandler

import (
	"PhysiqueGolang/internal/api/scan"
	scanService "PhysiqueGolang/internal/api/scan/service"
	"PhysiqueGolang/internal/entity"
	contextPkg "PhysiqueGolang/pkg/context"
	"PhysiqueGolang/pkg/handlerUtil"
	"PhysiqueGolang/pkg/log"
	"sync"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"
	jsoniter "github.com/json-iterator/go"
	"golang.org/x/net/context"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

func (h *ScanHandler) handleScanWebSocket(c *websocket.Conn) {
	h.log.Info("Scan WebSocket client connected")
	defer h.log.Info("Scan WebSocket client disconnected")

	c.SetPingHandler(func(data string) error {
		h.log.Debug("Received ping, sending pong")
		if err := c.WriteControl(websocket.PongMessage, []byte(data), time.Now().Add(5*time.Second)); err != nil {
			h.log.Errorf("Error sending pong: %v", err)
		}
		return nil
	})

	var (
		mu      sync.Mutex
		session *scanService.Session
	)

	writeJSON := func(v interface{}) error {
		mu.Lock()
		defer mu.Unlock()

		if err := c.SetWriteDeadline(time.Now().Add(10 * time.Second)); err != nil {
			return err
		}
		if err := c.WriteJSON(v); err != nil {
			return err
		}
		return c.SetWriteDeadline(time.Time{})
	}

	done := make(chan struct{})
	defer close(done)

	// The countdown is wall-clock driven, not frame driven, so it keeps
	// running even when the client stops sending frames.
	go func() {
		ticker := time.NewTicker(time.Second)
		defer ticker.Stop()

		for {
			select {
			case <-done:
				return
			case <-ticker.C:
				mu.Lock()
				current := session
				mu.Unlock()

				if current == nil {
					continue
				}

				ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
				msg, err := h.scanService.Tick(ctx, current)
				cancel()

				if err != nil {
					h.log.Errorf("Error finalizing scan: %v", err)
					_ = writeJSON(scan.ServerMessage{Type: scan.EventError, Error: err.Error()})
					continue
				}
				if msg == nil {
					continue
				}

				if err := writeJSON(msg); err != nil {
					h.log.Errorf("Error writing tick message: %v", err)
					return
				}
			}
		}
	}()

	maxReadTimeout := 60 * time.Second

	for {
		if err := c.SetReadDeadline(time.Now().Add(maxReadTimeout)); err != nil {
			h.log.Errorf("Error setting read deadline: %v", err)
			break
		}

		messageType, message, err := c.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				h.log.Errorf("Scan WebSocket error: %v", err)
			} else {
				h.log.Info("Scan WebSocket connection closed")
			}
			break
		}

		switch messageType {
		case websocket.TextMessage:
			var clientMsg scan.ClientMessage
			if err := json.Unmarshal(message, &clientMsg); err != nil {
				_ = writeJSON(scan.ServerMessage{Type: scan.EventError, Error: scan.ErrInvalidMessage.Error()})
				continue
			}

			mu.Lock()
			current := session
			mu.Unlock()

			switch clientMsg.Type {
			case scan.MessageStart:
				profile := entity.UserProfile{Gender: entity.GenderMale}
				if clientMsg.Profile != nil {
					profile = *clientMsg.Profile
				}
				if !profile.Gender.Valid() {
					_ = writeJSON(scan.ServerMessage{Type: scan.EventError, Error: "invalid gender"})
					continue
				}

				fresh := h.scanService.NewSession(profile)
				mu.Lock()
				session = fresh
				mu.Unlock()

				_ = writeJSON(scan.ServerMessage{
					Type:     scan.EventStarted,
					Phase:    "awaiting_front",
					PoseType: "front",
				})

			case scan.MessageFrame:
				if current == nil {
					_ = writeJSON(scan.ServerMessage{Type: scan.EventError, Error: scan.ErrSessionNotStarted.Error()})
					continue
				}

				update := h.scanService.Observe(current, clientMsg.Landmarks)
				if err := writeJSON(update); err != nil {
					h.log.Errorf("Error writing update: %v", err)
					return
				}

			case scan.MessageCapture:
				if current == nil {
					_ = writeJSON(scan.ServerMessage{Type: scan.EventError, Error: scan.ErrSessionNotStarted.Error()})
					continue
				}

				ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
				result, err := h.scanService.ManualCapture(ctx, current)
				cancel()

				if err != nil {
					_ = writeJSON(scan.ServerMessage{Type: scan.EventError, Error: err.Error()})
					continue
				}

				if err := writeJSON(result); err != nil {
					h.log.Errorf("Error writing capture result: %v", err)
					return
				}

			case scan.MessageCancel:
				if current != nil {
					h.scanService.Cancel(current)
				}

				mu.Lock()
				session = nil
				mu.Unlock()

				_ = writeJSON(scan.ServerMessage{Type: scan.EventCancelled})

			default:
				_ = writeJSON(scan.ServerMessage{Type: scan.EventError, Error: scan.ErrInvalidMessage.Error()})
			}

		case websocket.BinaryMessage:
			mu.Lock()
			current := session
			mu.Unlock()

			if current == nil {
				_ = writeJSON(scan.ServerMessage{Type: scan.EventError, Error: scan.ErrSessionNotStarted.Error()})
				continue
			}

			update, err := h.scanService.ObserveImage(current, message)
			if err != nil {
				h.log.Errorf("Error processing camera frame: %v", err)
				_ = writeJSON(scan.ServerMessage{Type: scan.EventError, Error: err.Error()})
				continue
			}

			if err := writeJSON(update); err != nil {
				h.log.Errorf("Error writing update: %v", err)
				return
			}

		default:
			h.log.Warnf("Received unexpected message type: %d", messageType)
		}
	}
}

func (h *ScanHandler) FrameQuality(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	h.log.WithFields(log.Fields{
		"request_id": requestID,
		"path":       ctx.Path(),
	}).Debug("Processing frame quality request")

	var req scan.FrameQualityRequest
	if err := ctx.BodyParser(&req); err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "parse_request_body")
	}

	if err := h.validator.Struct(req); err != nil {
		return errHandler.HandleValidationError(ctx, requestID, err, ctx.Path())
	}

	result := h.scanService.FrameQuality(req.PoseData, req.PoseType)

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusOK, result)
	}
}
