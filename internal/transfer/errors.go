package transfer

import (
	"fmt"

	"github.com/dmitrijs2005/peerlink/internal/common"
)

var (
	ErrUnknownHandle  = fmt.Errorf("%w: unknown handle", common.ErrTransferUnavailable)
	ErrAlreadyServing = fmt.Errorf("%w: handle already being served", common.ErrTransferUnavailable)
	ErrOfferExpired   = fmt.Errorf("%w: offer expired", common.ErrTransferUnavailable)
	ErrRegistryClosed = fmt.Errorf("%w: registry closed", common.ErrTransferUnavailable)
	ErrHeaderTooLong  = fmt.Errorf("%w: header line too long", common.ErrIOFailure)
)
