package handler

// --- Request / Response types ---

// The username rules mirror storage constraints: 2–20 characters and no
// colon, because the credential codec packs the username into a
// colon-delimited token subject.

type registerRequest struct {
	Username string `json:"username" validate:"required,min=2,max=20,excludesall=:"`
	Password string `json:"password" validate:"required,min=6,max=20"`
}

type loginRequest struct {
	Username string `json:"username" validate:"required,min=2,max=20,excludesall=:"`
	Password string `json:"password" validate:"required,min=6,max=20"`
}

// Response-only types owned by the transport layer, separate from the
// proto messages so the JSON contract is not coupled to the RPC schema.

type registerResult struct {
	Result string `json:"result"`
}

type loginResult struct {
	AccessToken string `json:"accessToken"`
}
