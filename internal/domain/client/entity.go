package client

import (
	"errors"

	"hotel-console/internal/domain/pricing"

	"github.com/google/uuid"
)

var ErrEmptyName = errors.New("client name cannot be empty")

const (
	// One loyalty point per this many currency units of room spend.
	unitsPerPoint = 20
	// Each full tier of points grants tierPercent of discount.
	pointsPerTier      = 5000
	tierPercent        = 5
	maxDiscountPercent = 75
)

// Client is a loyalty-program member. Points only ever increase and are
// earned on room spend only, never on services.
type Client struct {
	id     uuid.UUID
	name   string
	points int
}

func NewClient(name string) (*Client, error) {
	if name == "" {
		return nil, ErrEmptyName
	}

	return &Client{
		id:   uuid.New(),
		name: name,
	}, nil
}

func (c *Client) ID() uuid.UUID { return c.id }
func (c *Client) Name() string  { return c.name }
func (c *Client) Points() int   { return c.points }

// AccruePoints credits one point per 20 currency units spent, truncated.
func (c *Client) AccruePoints(spent pricing.Money) {
	c.points += int(spent.Cents() / (unitsPerPoint * 100))
}

// DiscountPercent is the tier discount earned so far: 5% per 5000 points,
// capped at 75%.
func (c *Client) DiscountPercent() pricing.DiscountPercent {
	percent := c.points / pointsPerTier * tierPercent
	if percent > maxDiscountPercent {
		percent = maxDiscountPercent
	}
	d, _ := pricing.NewDiscountPercent(float64(percent))
	return d
}
