package http

// Mensajes visibles al usuario (pt-BR).
const (
	msgInvalidRequest    = "Requisição inválida."
	msgSignInWelcome     = "Bem vindo de volta, %s :D"
	msgSignInFailed      = "Não foi possivel realizar o login, verifique suas credenciais e tente novamente em instantes."
	msgSignInRateLimited = "Muitas tentativas de login. Aguarde alguns minutos e tente novamente."
	msgSignUpWelcome     = "Bem vindo, %s :D"
	msgSignUpFailed      = "Não foi possivel efetuar seu cadastro, tente novamente em instantes!"
	msgSignOut           = "Você foi desconectado com sucesso"
	msgSessionRequired   = "Sessão inválida ou expirada."
)
