package ports

import "context"

// ImageStorage define a interface para o serviço externo de hospedagem
// de imagens. A entrada pode ser uma URL absoluta (retornada como está)
// ou dados de imagem inline (data URI / base64) a serem enviados.
type ImageStorage interface {
	Upload(ctx context.Context, image, folder string) (string, error)
}
