package common

// AuthorizationHeaderName is the HTTP header carrying the session token.
const AuthorizationHeaderName = "Authorization"

// BearerScheme is the optional prefix in front of the token value.
const BearerScheme = "Bearer"
