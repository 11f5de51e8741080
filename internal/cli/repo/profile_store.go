package repo

// ProfileStore хранит последний активный профиль, чтобы команды работали без -profile.
type ProfileStore interface {
	SaveProfile(profile string) error
	LoadProfile() (string, error)
}
