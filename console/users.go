package console

import "assetconsole/models"

// FilterUsers keeps users with the given role. An empty role keeps everyone.
func FilterUsers(users []models.User, role models.Role) []models.User {
	matched := make([]models.User, 0, len(users))
	for _, u := range users {
		if role != "" && u.Role != role {
			continue
		}
		matched = append(matched, u)
	}
	return matched
}
