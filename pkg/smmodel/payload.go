package smmodel

// HasSecretString reports whether the version carries a text payload.
func (g *GetSecretValueResult) HasSecretString() bool {
	return g != nil && g.SecretString != nil
}

// HasSecretBinary reports whether the version carries a binary payload.
func (g *GetSecretValueResult) HasSecretBinary() bool {
	return g != nil && g.SecretBinary != nil
}

// Payload returns the text payload, or the binary payload as a string when no
// text is stored.
func (g *GetSecretValueResult) Payload() string {
	if g.HasSecretString() {
		return *g.SecretString
	}

	return string(g.GetSecretBinary())
}
