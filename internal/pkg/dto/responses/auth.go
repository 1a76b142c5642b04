package responses

type Login struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}
