package rest

import (
	"errors"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/gin-gonic/gin"

	"github.com/tokentreat/treat-service/internal/treat"
)

const MAX_PAGE_SIZE = treat.MaxPageLimit

// BurnableQueryParams holds query parameters for GET /treats/burnable
type BurnableQueryParams struct {
	Source string `form:"source"`
	Offset int64  `form:"offset,default=0"`
	Limit  int64  `form:"limit,default=20"`
}

// ParseBurnableQuery parses query parameters for GET /treats/burnable
func ParseBurnableQuery(c *gin.Context) (*BurnableQueryParams, error) {
	var params BurnableQueryParams
	if err := c.ShouldBindQuery(&params); err != nil {
		return nil, err
	}

	// Cap limits
	if params.Limit > MAX_PAGE_SIZE {
		params.Limit = MAX_PAGE_SIZE
	}

	return &params, nil
}

// Validate validates the burnable query parameters
func (p *BurnableQueryParams) Validate() error {
	if p.Source != "" && !treat.Source(p.Source).Valid() {
		return fmt.Errorf("invalid source: %s, must be one of scan, supply, index", p.Source)
	}
	if p.Offset < 0 {
		return errors.New("offset must not be negative")
	}
	if p.Limit < 1 {
		return errors.New("limit must be at least 1")
	}
	return nil
}

// Page converts the parameters into an aggregator page
func (p *BurnableQueryParams) Page() treat.Page {
	return treat.Page{
		Source: treat.Source(p.Source),
		Offset: p.Offset,
		Limit:  p.Limit,
	}
}

// parseTreatID parses a decimal, non-negative token id
func parseTreatID(raw string) (*big.Int, error) {
	id, ok := new(big.Int).SetString(raw, 10)
	if !ok || id.Sign() < 0 {
		return nil, fmt.Errorf("invalid treat id: %s", raw)
	}
	return id, nil
}

// validAddress reports whether raw is a hex address
func validAddress(raw string) bool {
	return common.IsHexAddress(raw)
}
