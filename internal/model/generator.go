package model

// GenerateRequest represents a single password generation request, from either
// query parameters or a JSON body. Pointer/FlexBool fields distinguish missing
// (default applies) from explicitly supplied values.
type GenerateRequest struct {
	Length           *int     `json:"length"`
	IncludeUppercase FlexBool `json:"includeUppercase"`
	IncludeLowercase FlexBool `json:"includeLowercase"`
	IncludeNumbers   FlexBool `json:"includeNumbers"`
	IncludeSymbols   FlexBool `json:"includeSymbols"`
	ExcludeAmbiguous FlexBool `json:"excludeAmbiguous"`
	Exclude          string   `json:"exclude"`
	RequireEach      FlexBool `json:"requireEach"`
}

// BatchRequest represents a multi-password generation request.
type BatchRequest struct {
	GenerateRequest
	Count *int `json:"count"`
}

// Options echoes the fully resolved generation options back to the caller.
type Options struct {
	IncludeUppercase bool   `json:"includeUppercase"`
	IncludeLowercase bool   `json:"includeLowercase"`
	IncludeNumbers   bool   `json:"includeNumbers"`
	IncludeSymbols   bool   `json:"includeSymbols"`
	ExcludeAmbiguous bool   `json:"excludeAmbiguous"`
	Exclude          string `json:"exclude"`
	RequireEach      bool   `json:"requireEach"`
}

// GenerateResponse represents a single password generation response.
type GenerateResponse struct {
	Success  bool    `json:"success"`
	Password string  `json:"password"`
	Length   int     `json:"length"`
	Options  Options `json:"options"`
}

// BatchResponse represents a multi-password generation response.
type BatchResponse struct {
	Success   bool     `json:"success"`
	Count     int      `json:"count"`
	Passwords []string `json:"passwords"`
	Length    int      `json:"length"`
	Options   Options  `json:"options"`
}

// ValidateRequest represents a password validation request. Password is typed
// any so a missing or non-string value can be rejected with a clear message
// instead of a generic decode error.
type ValidateRequest struct {
	Password     any                  `json:"password"`
	Requirements *RequirementsRequest `json:"requirements"`
}

// RequirementsRequest configures validation; omitted fields use defaults.
type RequirementsRequest struct {
	MinLength        *int     `json:"minLength"`
	MaxLength        *int     `json:"maxLength"`
	RequireUppercase FlexBool `json:"requireUppercase"`
	RequireLowercase FlexBool `json:"requireLowercase"`
	RequireNumbers   FlexBool `json:"requireNumbers"`
	RequireSymbols   FlexBool `json:"requireSymbols"`
}

// CheckResult is one validation rule outcome as rendered in the response.
type CheckResult struct {
	Passed  bool   `json:"passed"`
	Message string `json:"message"`
}

// ValidateResult is the structured strength report.
type ValidateResult struct {
	Valid    bool                   `json:"valid"`
	Score    int                    `json:"score"`
	Strength string                 `json:"strength"`
	Checks   map[string]CheckResult `json:"checks"`
}

// ValidateResponse represents a password validation response.
type ValidateResponse struct {
	Success  bool           `json:"success"`
	Password string         `json:"password"`
	Result   ValidateResult `json:"result"`
}

// ErrorResponse is the envelope for all error replies.
type ErrorResponse struct {
	Error   bool   `json:"error"`
	Message string `json:"message"`
	Status  int    `json:"status"`
}
