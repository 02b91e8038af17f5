package schedules

import "context"

// OwnerOf expone el ownerUserID de un schedule.
// Se usa para evitar ciclos de imports entre módulos (schedules <-> doses).
func (s *Service) OwnerOf(ctx context.Context, scheduleID string) (string, error) {
	m, err := s.GetByID(ctx, scheduleID)
	if err != nil {
		return "", err
	}
	return m.OwnerUserID, nil
}
