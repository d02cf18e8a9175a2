package lox

func MapErr[T any, R comparable](collection []T, iteratee func(item T) (R, error)) ([]R, error) {
	var err error

	result := make([]R, len(collection))

	for i, item := range collection {
		result[i], err = iteratee(item)
		if err != nil {
			return nil, err
		}
	}

	return result, nil
}
