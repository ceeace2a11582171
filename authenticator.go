package booking

import "context"

// Auther drives the login flow: verify credentials, then mint a token for
// the verified principal.
type Auther struct {
	verifier CredentialVerifier
	tokens   TokenIssuer
	logger   Logger
}

// LoginResult carries the issued token together with the principal it was
// issued for, so the login surface can shape its response without a second
// store read.
type LoginResult struct {
	Token     string
	Principal Principal
}

// NewAuthenticator returns a new Auther
func NewAuthenticator(verifier CredentialVerifier, tokens TokenIssuer) *Auther {
	return &Auther{
		verifier: verifier,
		tokens:   tokens,
		logger:   defLogger{},
	}
}

func (a *Auther) WithLogger(logger Logger) *Auther {
	if logger != nil {
		a.logger = logger
	}
	return a
}

// Login verifies the email/password pair and issues a bearer token.
func (a *Auther) Login(ctx context.Context, email, password string) (LoginResult, error) {
	principal, err := a.verifier.VerifyIdentity(ctx, email, password)
	if err != nil {
		a.logger.Info("login rejected", "email", email)
		return LoginResult{}, err
	}

	token, err := a.tokens.Issue(principal)
	if err != nil {
		a.logger.Error("login token issue failed", "error", err)
		return LoginResult{}, err
	}

	return LoginResult{Token: token, Principal: principal}, nil
}
