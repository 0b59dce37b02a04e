package models

func (g GalleryItem) IsVisible() bool      { return g.Visible }
func (c Course) IsVisible() bool           { return c.Visible }
func (i Instructor) IsVisible() bool       { return i.Visible }
func (d DrawingTechnique) IsVisible() bool { return d.Visible }
