package commands

import (
	"errors"
	"time"

	"github.com/FIAP-6SOAT-G10/tech-challenge-fase-1/internal/pkg/errs"
	"github.com/FIAP-6SOAT-G10/tech-challenge-fase-1/internal/pkg/guard"
)

var ErrExpireUnpaidOrdersCommandIsNotConstructed = errors.New(
	"ExpireUnpaidOrdersCommand must be created via NewExpireUnpaidOrdersCommand constructor",
)

// ExpireUnpaidOrdersCommand cancels orders left awaiting payment for longer than ttl.
type ExpireUnpaidOrdersCommand struct { //nolint:recvcheck //using for validation
	ttl time.Duration

	guard guard.ConstructorGuard
}

func NewExpireUnpaidOrdersCommand(ttl time.Duration) (ExpireUnpaidOrdersCommand, error) {
	if ttl <= 0 {
		return ExpireUnpaidOrdersCommand{}, errs.NewValueIsOutOfRangeError("ttl", ttl, "1ns", "unbounded")
	}

	return ExpireUnpaidOrdersCommand{
		ttl:   ttl,
		guard: guard.NewConstructorGuard(),
	}, nil
}

func (c ExpireUnpaidOrdersCommand) Validate() error {
	return c.guard.Validate(ErrExpireUnpaidOrdersCommandIsNotConstructed)
}

func (c ExpireUnpaidOrdersCommand) TTL() time.Duration {
	return c.ttl
}
