package inspector

import (
	"fmt"

	"github.com/moov-io/iso8583"
	connection "github.com/moov-io/iso8583-connection"
	"github.com/moov-io/iso8583-connection/server"
	"golang.org/x/exp/slog"

	"github.com/alovak/cardinfo/internal/isomsg"
)

// ISO8583Server accepts ISO 8583 requests over TCP and answers each one with
// the inspection result in DE39 and DE44.
type ISO8583Server struct {
	Addr    string
	logger  *slog.Logger
	service *Service
	server  *server.Server
}

func NewISO8583Server(logger *slog.Logger, addr string, service *Service) *ISO8583Server {
	return &ISO8583Server{
		Addr:    addr,
		logger:  logger.With(slog.String("server", "iso8583")),
		service: service,
	}
}

func (s *ISO8583Server) Start() error {
	s.server = server.New(isomsg.Spec, isomsg.ReadMessageLength, isomsg.WriteMessageLength,
		connection.InboundMessageHandler(s.handleMessage),
	)

	if err := s.server.Start(s.Addr); err != nil {
		return fmt.Errorf("listening on %s: %w", s.Addr, err)
	}

	s.Addr = s.server.Addr
	s.logger.Info("iso8583 server started", slog.String("addr", s.Addr))

	return nil
}

func (s *ISO8583Server) Close() error {
	s.server.Close()
	s.logger.Info("iso8583 server stopped")
	return nil
}

func (s *ISO8583Server) handleMessage(c *connection.Connection, message *iso8583.Message) {
	resp, err := s.service.Authorize(message)
	if err != nil {
		s.logger.Error("handling iso8583 message", "err", err)
		return
	}

	if err := c.Reply(resp); err != nil {
		s.logger.Error("replying to iso8583 message", "err", err)
	}
}
