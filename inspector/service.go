package inspector

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/moov-io/iso8583"
	"golang.org/x/exp/slog"

	"github.com/alovak/cardinfo/cardinfo"
	"github.com/alovak/cardinfo/inspector/models"
	"github.com/alovak/cardinfo/internal/expiry"
	"github.com/alovak/cardinfo/internal/isomsg"
)

type Service struct {
	logger *slog.Logger
}

func NewService(logger *slog.Logger) *Service {
	return &Service{
		logger: logger,
	}
}

func (s *Service) Inspect(req models.InspectRequest) (*models.Inspection, error) {
	card, err := cardinfo.New(req.Number, req.SecurityCode, req.ExpiryMonth, req.ExpiryYear, req.HolderName)
	if err != nil {
		return nil, fmt.Errorf("inspecting card: %w", err)
	}

	return s.inspection(card, "json"), nil
}

// InspectISO8583 inspects the card carried in DE2/DE14 of a packed message.
func (s *Service) InspectISO8583(raw []byte) (*models.Inspection, error) {
	card, err := isomsg.Inspect(raw)
	if err != nil {
		return nil, fmt.Errorf("inspecting iso8583 message: %w", err)
	}

	return s.inspection(card, "iso8583"), nil
}

// Authorize inspects a request received on the ISO 8583 listener and builds
// the reply. Only a reply that cannot be built is returned as an error; a
// card that cannot be read is answered with a format error code.
func (s *Service) Authorize(req *iso8583.Message) (*iso8583.Message, error) {
	card, err := isomsg.InspectMessage(req)
	if err != nil {
		s.logger.Warn("rejecting iso8583 message", "err", err)
	} else {
		s.inspection(card, "iso8583-tcp")
	}

	resp, err := isomsg.Reply(req, card, err)
	if err != nil {
		return nil, fmt.Errorf("building reply: %w", err)
	}
	return resp, nil
}

func (s *Service) Brands() []models.BrandInfo {
	brands := cardinfo.Brands()
	out := make([]models.BrandInfo, 0, len(brands))
	for _, b := range brands {
		out = append(out, models.BrandInfo{ID: int(b), Label: b.Label()})
	}
	return out
}

func (s *Service) inspection(card cardinfo.CardInfo, source string) *models.Inspection {
	inspection := &models.Inspection{
		ID:       uuid.New().String(),
		Number:   card.Masked(),
		Last4:    card.Last4(),
		Brand:    card.Brand(),
		Valid:    card.Valid(),
		CardFace: expiry.CardFace(card.ExpiryMonth(), card.ExpiryYear()),
	}

	s.logger.Info("card inspected",
		slog.String("inspection_id", inspection.ID),
		slog.String("source", source),
		slog.Any("card", card),
	)

	return inspection
}
