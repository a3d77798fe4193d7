package v10x

import (
	"fmt"

	"github.com/forgekit/bsa-kit/pkg/bsaerr"
	"github.com/forgekit/bsa-kit/pkg/version"
)

func unsupportedVariant(v version.V10X) error {
	return fmt.Errorf("v10x: %s: %w", v, bsaerr.ErrUnsupportedVersion)
}
