package application

// MockCategoryService satisfies CategoryServiceInterface for transaction
// service tests. Categories maps category id to its owner's user id.
type MockCategoryService struct {
	Categories map[int]int
	Err        error
}

func (m *MockCategoryService) DoesUserCategoryExist(categoryID, userID int) (bool, error) {
	if m.Err != nil {
		return false, m.Err
	}
	ownerID, exists := m.Categories[categoryID]
	return exists && ownerID == userID, nil
}
