package domain

import "errors"

// Erros de domínio (sem dependências externas).
var (
	ErrNotFound            = errors.New("registro não encontrado")
	ErrStorageUnavailable  = errors.New("armazenamento indisponível")
	ErrValidacao           = errors.New("documento de backup com formato não reconhecido")
	ErrSintaxe             = errors.New("conteúdo não é JSON válido")
	ErrRestauracao         = errors.New("falha ao restaurar backup")
	ErrConfirmacaoPendente = errors.New("nenhuma restauração aguardando confirmação")
	ErrUserNotFound        = errors.New("usuário não encontrado")
	ErrEmailAlreadyExists  = errors.New("o email já está cadastrado")
	ErrInvalidInput        = errors.New("entrada inválida")
	ErrUnauthorized        = errors.New("não autorizado")
	ErrForbidden           = errors.New("acesso negado")
)
