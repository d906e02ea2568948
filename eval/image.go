package eval

import (
	"image"

	"pix/lang"
)

// Every image node evaluates its operands, checks that they are images and
// hands them to the Imager.

func (ev *Evaluator) VisitRead(env *lang.Env, node *lang.Read) (lang.Value, error) {
	imager, err := ev.imager()
	if err != nil {
		return nil, err
	}
	img, err := imager.Open(node.Path)
	if err != nil {
		return nil, imagingError(err)
	}
	return lang.NewImage(img), nil
}

func (ev *Evaluator) VisitRotate(env *lang.Env, node *lang.Rotate) (lang.Value, error) {
	return ev.transform(env, node.Image, "rotate", func(imager Imager, img image.Image) (image.Image, error) {
		return imager.Rotate(img)
	})
}

func (ev *Evaluator) VisitLighten(env *lang.Env, node *lang.Lighten) (lang.Value, error) {
	factor := ev.LightenFactor
	if factor == 0 {
		factor = DefaultLightenFactor
	}
	return ev.transform(env, node.Image, "lighten", func(imager Imager, img image.Image) (image.Image, error) {
		return imager.Brightness(img, factor)
	})
}

func (ev *Evaluator) VisitDarken(env *lang.Env, node *lang.Darken) (lang.Value, error) {
	factor := ev.DarkenFactor
	if factor == 0 {
		factor = DefaultDarkenFactor
	}
	return ev.transform(env, node.Image, "darken", func(imager Imager, img image.Image) (image.Image, error) {
		return imager.Brightness(img, factor)
	})
}

func (ev *Evaluator) VisitBlur(env *lang.Env, node *lang.Blur) (lang.Value, error) {
	return ev.transform(env, node.Image, "blur", func(imager Imager, img image.Image) (image.Image, error) {
		return imager.Blur(img)
	})
}

func (ev *Evaluator) VisitInvert(env *lang.Env, node *lang.Invert) (lang.Value, error) {
	return ev.transform(env, node.Image, "invert", func(imager Imager, img image.Image) (image.Image, error) {
		return imager.Invert(img)
	})
}

// Show materializes its operand and evaluates to the same image.
func (ev *Evaluator) VisitShow(env *lang.Env, node *lang.Show) (lang.Value, error) {
	v, err := ev.Eval(env, node.Image)
	if err != nil {
		return nil, err
	}
	img, ok := v.(*lang.Image)
	if !ok {
		return nil, typeError("show requires an image", v)
	}
	imager, err := ev.imager()
	if err != nil {
		return nil, err
	}
	where, err := imager.Materialize(img.Data())
	if err != nil {
		return nil, imagingError(err)
	}
	ev.logf("show: %s written to %s", img, where)
	return img, nil
}

func (ev *Evaluator) VisitCombine(env *lang.Env, node *lang.Combine) (lang.Value, error) {
	left, right, err := ev.operands(env, node.Left, node.Right)
	if err != nil {
		return nil, err
	}
	l, lok := left.(*lang.Image)
	r, rok := right.(*lang.Image)
	if !lok || !rok {
		return nil, typeError("combine requires two images", left, right)
	}
	return ev.combine(l, r)
}

func (ev *Evaluator) combine(left, right *lang.Image) (lang.Value, error) {
	imager, err := ev.imager()
	if err != nil {
		return nil, err
	}
	img, err := imager.Combine(left.Data(), right.Data())
	if err != nil {
		return nil, imagingError(err)
	}
	return lang.NewImage(img), nil
}

// =========
// Utilities
// =========

func (ev *Evaluator) transform(env *lang.Env, expr lang.Expr, op string, f func(Imager, image.Image) (image.Image, error)) (lang.Value, error) {
	v, err := ev.Eval(env, expr)
	if err != nil {
		return nil, err
	}
	img, ok := v.(*lang.Image)
	if !ok {
		return nil, typeError(op+" requires an image", v)
	}
	imager, err := ev.imager()
	if err != nil {
		return nil, err
	}
	out, err := f(imager, img.Data())
	if err != nil {
		return nil, imagingError(err)
	}
	return lang.NewImage(out), nil
}

func (ev *Evaluator) imager() (Imager, error) {
	if ev.Imager == nil {
		return nil, newError(KindImaging, "no imaging collaborator configured")
	}
	return ev.Imager, nil
}
