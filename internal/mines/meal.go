package mines

import "fmt"

var (
	DefaultFavoriteFoods = []string{
		"裕隆城美食街", "小樂麵食館", "壽司郎", "麥當勞", "Hiro's らぁ麵Kitchen", "麵屋達摩", "肉道場",
	}
	DefaultNormalFoods = []string{
		"9樓自助餐", "9樓四海遊龍", "9樓義大利麵", "9樓拉亞漢堡",
	}
)

// PickMeal draws from the favorites after a win and from the normal list
// otherwise.
func PickMeal(s State, r Rand) (string, error) {
	if s.Status == Won {
		return pick(s.FavoriteFoods, r)
	}
	return pick(s.NormalFoods, r)
}

func pick(list []string, r Rand) (string, error) {
	if len(list) == 0 {
		return "", ErrEmptyList
	}
	if r == nil {
		return "", fmt.Errorf("%w: nil random source", ErrInvalidArgument)
	}
	return list[r.IntN(len(list))], nil
}
