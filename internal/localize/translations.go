package localize

var categoryTranslations = map[string]string{
	"men's clothing":   "Ropa de Hombre",
	"jewelery":         "Joyería",
	"electronics":      "Electrónica",
	"women's clothing": "Ropa de Mujer",
}

type productText struct {
	title       string
	description string
}

// Curated Spanish copy for the 20 catalog products the demo ships with.
var productTranslations = map[int]productText{
	1:  {"Mochila Fjallraven", "Mochila perfecta para el día a día. Diseño clásico y duradero."},
	2:  {"Camiseta Casual Hombre", "Camiseta de algodón suave, corte slim fit ideal para cualquier ocasión."},
	3:  {"Chaqueta de Algodón", "Chaqueta ligera y cómoda, perfecta para climas templados."},
	4:  {"Camisa Slim Fit", "Camisa casual ajustada, estilo moderno y elegante."},
	5:  {"Brazalete de Plata", "Brazalete con diseño de dragón, hecho a mano en plata y bronce."},
	6:  {"Anillo de Oro Sólido", "Anillo delicado de oro sólido con micropavé de diamantes."},
	7:  {"Anillo Princesa Chapado", "Anillo chapado en oro blanco, diseño clásico de princesa."},
	8:  {"Aretes de Búho", "Aretes de acero inoxidable con diseño de búho, chapados en oro rosa."},
	9:  {"Disco Duro WD 2TB", "Disco duro externo USB 3.0, compatible con PC y consolas."},
	10: {"SSD SanDisk 1TB", "Unidad de estado sólido interna de alto rendimiento."},
	11: {"SSD Silicon Power", "SSD de 256GB con tecnología 3D NAND para mayor velocidad."},
	12: {"Disco Gaming WD 4TB", "Disco duro diseñado para gamers, gran capacidad y velocidad."},
	13: {"Monitor Acer 21.5\"", "Monitor Full HD ultra delgado, ideal para oficina y hogar."},
	14: {"Monitor Curvo Samsung 49\"", "Monitor gaming ultra ancho de 49 pulgadas, experiencia inmersiva."},
	15: {"Chaqueta Invierno Mujer", "Chaqueta 3 en 1 para nieve, impermeable y térmica."},
	16: {"Chaqueta Biker Mujer", "Chaqueta de cuero sintético estilo motociclista con capucha removible."},
	17: {"Impermeable Mujer", "Chaqueta ligera para lluvia, cortavientos y transpirable."},
	18: {"Camiseta Cuello V Mujer", "Camiseta básica de manga corta, tela suave y elástica."},
	19: {"Camiseta Deportiva Mujer", "Camiseta técnica para running y entrenamiento, secado rápido."},
	20: {"Camiseta Casual Mujer", "Camiseta de algodón con estampado casual."},
}
