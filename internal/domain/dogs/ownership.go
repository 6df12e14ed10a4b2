package dogs

import "context"

// OwnerOf expone el ownerUserID de un perro.
// Se usa para chequear acceso desde otros módulos (readings, wellness)
// sin crear ciclos de imports.
func (s *Service) OwnerOf(ctx context.Context, dogID string) (string, error) {
	d, err := s.GetByID(ctx, dogID)
	if err != nil {
		return "", err
	}
	return d.OwnerUserID, nil
}
