// Package tenant resolves a customer_code into its content or file schema
// name, the way original_source/document-server/src/item_query.rs builds
// "cs_{customer_code}.item" SQL directly rather than relying on a
// per-connection search_path. Both Document Server (cs_<code>) and File
// Server (fs_<code>) share this one validation so a malformed customer_code
// can never smuggle SQL into either service's schema-qualified queries.
package tenant

import (
	"fmt"
	"regexp"
)

// customerCodePattern matches the 8-hex-char customer_code format Admin
// Server generates (spec.md §4.4 step 3).
var customerCodePattern = regexp.MustCompile(`^[0-9a-f]{8}$`)

// ContentSchemaName returns the cs_<code> schema name for customerCode,
// rejecting anything that doesn't match the generated format so a
// customer_code can never be used to smuggle SQL into a schema-qualified
// table reference.
func ContentSchemaName(customerCode string) (string, error) {
	if !customerCodePattern.MatchString(customerCode) {
		return "", fmt.Errorf("tenant: invalid customer_code %q", customerCode)
	}
	return "cs_" + customerCode, nil
}

// FileSchemaName returns the fs_<code> schema name for customerCode, under
// the same validation ContentSchemaName applies.
func FileSchemaName(customerCode string) (string, error) {
	if !customerCodePattern.MatchString(customerCode) {
		return "", fmt.Errorf("tenant: invalid customer_code %q", customerCode)
	}
	return "fs_" + customerCode, nil
}
