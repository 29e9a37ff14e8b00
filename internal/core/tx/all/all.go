// Package all registers every transactor family with the registry.
// Import it for side effects wherever transactions are parsed by name.
package all

import (
	_ "github.com/openfrac/gofracd/internal/core/tx/admin"
	_ "github.com/openfrac/gofracd/internal/core/tx/auction"
	_ "github.com/openfrac/gofracd/internal/core/tx/shares"
	_ "github.com/openfrac/gofracd/internal/core/tx/vote"
)
