package domain

import "errors"

// Domain errors.
var (
	ErrLotteryNotFound = errors.New("loterie non trouvée")
	ErrDuplicateName   = errors.New("une loterie porte déjà ce nom")
	ErrNotAuthorized   = errors.New("rôle requis manquant")
)
