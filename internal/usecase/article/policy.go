package article

import "news-portal/internal/domain/entity"

// RequireNonEmpty turns an empty collection into ErrNotFound. Slider and
// category lookups report "nothing there" as not found; paginated listing
// does not use it since an empty page is ordinary.
func RequireNonEmpty(articles []*entity.Article) ([]*entity.Article, error) {
	if len(articles) == 0 {
		return nil, ErrNotFound
	}
	return articles, nil
}
