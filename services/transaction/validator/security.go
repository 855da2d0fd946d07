package validator

import (
	"context"
	"errors"
	"fmt"
	"regexp"

	"github.com/sirupsen/logrus"

	"github.com/nusabank/transaction-core/internal/pkg/logger"
	"github.com/nusabank/transaction-core/internal/pkg/models"
)

var (
	ErrBlockedIP            = errors.New("requests from this IP address are blocked")
	ErrUserAgentTooLong     = errors.New("user agent exceeds the allowed length")
	ErrApprovalCodeTooShort = errors.New("approval code is too short")
)

// privateRangePattern matches RFC 1918 addresses. Requests from these ranges
// are allowed but flagged, since customer traffic normally arrives from
// public addresses.
var privateRangePattern = regexp.MustCompile(`^(10\.|172\.(1[6-9]|2[0-9]|3[01])\.|192\.168\.)`)

// SecurityValidator screens transaction requests for provenance anomalies
// before they reach the orchestrator. Field-format validation has already
// happened at construction; this layer applies policy on top of it.
type SecurityValidator struct {
	blockedIPs         map[string]struct{}
	maxUserAgentLen    int
	minApprovalCodeLen int
	log                *logger.AppLogger
}

// NewSecurityValidator creates a security validator from configuration
func NewSecurityValidator(cfg models.SecurityConfig, log *logger.AppLogger) *SecurityValidator {
	blocked := make(map[string]struct{}, len(cfg.BlockedIPs))
	for _, ip := range cfg.BlockedIPs {
		blocked[ip] = struct{}{}
	}

	maxUserAgentLen := cfg.MaxUserAgentLen
	if maxUserAgentLen <= 0 {
		maxUserAgentLen = 512
	}
	minApprovalCodeLen := cfg.MinApprovalCodeLen
	if minApprovalCodeLen <= 0 {
		minApprovalCodeLen = 6
	}

	return &SecurityValidator{
		blockedIPs:         blocked,
		maxUserAgentLen:    maxUserAgentLen,
		minApprovalCodeLen: minApprovalCodeLen,
		log:                log,
	}
}

// Validate applies the security policy to a request. A non-nil return is a
// business rejection surfaced to the caller as the rejection reason.
func (v *SecurityValidator) Validate(ctx context.Context, req *models.TransactionRequest) error {
	ip := req.IPAddress()

	if _, blocked := v.blockedIPs[ip]; blocked {
		return fmt.Errorf("%w: %s", ErrBlockedIP, ip)
	}

	if privateRangePattern.MatchString(ip) {
		v.log.WithFields(logrus.Fields{
			"ip_address": ip,
			"user_id":    req.UserID(),
		}).Warn("transaction request from private address range")
	}

	if len(req.UserAgent()) > v.maxUserAgentLen {
		return ErrUserAgentTooLong
	}

	if code := req.ApprovalCode(); code != "" && len(code) < v.minApprovalCodeLen {
		return ErrApprovalCodeTooShort
	}

	return nil
}
