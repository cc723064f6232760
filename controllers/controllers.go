package controllers

import (
	"github.com/monetra/monetra/exchange"
	"github.com/monetra/monetra/ledger"
)

// Wired once at startup, before the router starts serving.
var (
	Ledger *ledger.Engine
	Rates  *exchange.Service
)
