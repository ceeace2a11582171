package booking

import "context"

// TeacherService is a read-only facade over the teachers repository.
type TeacherService struct {
	teachers *TeachersRepository
}

func NewTeacherService(teachers *TeachersRepository) *TeacherService {
	return &TeacherService{teachers: teachers}
}

func (s *TeacherService) FindAll(ctx context.Context) ([]*Teacher, error) {
	return s.teachers.List(ctx)
}

func (s *TeacherService) GetByID(ctx context.Context, id int64) (*Teacher, error) {
	return s.teachers.GetByID(ctx, id)
}
