package i18n

// products maps raw catalog values and attribute labels to their
// rendering in each language, ordered es, en, fr, pt.
var products = map[string]phrase{
	// Tipo Calzado
	"Bota Alta":       {"Bota Alta", "High Boot", "Botte Haute", "Bota Alta"},
	"Bota al Tobillo": {"Bota al Tobillo", "Ankle Boot", "Bottine", "Bota ao Tornozelo"},
	"Zapato o Tenis":  {"Zapato o Tenis", "Shoe or Sneaker", "Chaussure ou Basket", "Sapato ou Tênis"},
	// Cubrepuntera
	"Cubrepuntera": {"Cubrepuntera", "Toe Cap Cover", "Couvre-embout", "Cobertura de Biqueira"},
	"Si":           {"Sí", "Yes", "Oui", "Sim"},
	"Sí":           {"Sí", "Yes", "Oui", "Sim"},
	"No":           {"No", "No", "Non", "Não"},
	// Tipo Puntera
	"Acero 200J":        {"Acero 200J", "Steel 200J", "Acier 200J", "Aço 200J"},
	"Composite 200J":    {"Composite 200J", "Composite 200J", "Composite 200J", "Composite 200J"},
	"No tiene":          {"No tiene", "None", "Aucun", "Não tem"},
	"Plástico":          {"Plástico", "Plastic", "Plastique", "Plástico"},
	"Plstico":           {"Plástico", "Plastic", "Plastique", "Plástico"},
	"Citoplástico 200C": {"Citoplástico 200C", "Citoplastic 200C", "Citoplastique 200C", "Citoplástico 200C"},
	// Antiperforante
	"Antiperforante": {"Antiperforante", "Anti-Perforation", "Anti-Perforation", "Antiperfuração"},
	"Acero 1100 N":   {"Acero 1100 N", "Steel 1100 N", "Acier 1100 N", "Aço 1100 N"},
	"Textil 1100 N":  {"Textil 1100 N", "Textile 1100 N", "Textile 1100 N", "Têxtil 1100 N"},
	// Protector Metatarsal
	"Protector Metatarsal": {"Protector Metatarsal", "Metatarsal Guard", "Protection Métatarsienne", "Protetor Metatarsal"},
	"Interno":              {"Interno", "Internal", "Interne", "Interno"},
	"Externo":              {"Externo", "External", "Externe", "Externo"},
	// Capellada
	"Capellada":                    {"Capellada", "Upper", "Tige", "Cabedal"},
	"Cuero Carnaza":                {"Cuero Carnaza", "Split Leather", "Cuir Refendu", "Couro Camurça"},
	"Cuero Plena Flor":             {"Cuero Plena Flor", "Full Grain Leather", "Cuir Pleine Flor", "Couro Plena Flor"},
	"Cuero Plena Flor HIDRO":       {"Cuero Plena Flor HIDRO", "Hydro Full Grain Leather", "Cuir Pleine Fleur HYDRO", "Couro Plena Flor HIDRO"},
	"Cuero Nobuck":                 {"Cuero Nobuck", "Nubuck Leather", "Cuir Nubuck", "Couro Nobuck"},
	"Microfibra Mmicro PVC":        {"Microfibra Micro PVC", "Micro PVC Microfiber", "Microfibre Micro PVC", "Microfibra Micro PVC"},
	"Cuero Rodock":                 {"Cuero Rodock", "Rodock Leather", "Cuir Rodock", "Couro Rodock"},
	"Cuero Vaqueta Lisa":           {"Cuero Vaqueta Lisa", "Smooth Cowhide", "Cuir Vaquette Lisse", "Couro Vaqueta Lisa"},
	"EVA":                          {"EVA", "EVA", "EVA", "EVA"},
	"Cuero Vaqueta HIDRO":          {"Cuero Vaqueta HIDRO", "Hydro Cowhide", "Cuir Vaquette HYDRO", "Couro Vaqueta HIDRO"},
	"Cuero Liso Fuego":             {"Cuero Liso Fuego", "Fire Smooth Leather", "Cuir Lisse Feu", "Couro Liso Fogo"},
	"Cuero Nobuck Hidrofugado":     {"Cuero Nobuck Hidrofugado", "Water-Repellent Nubuck", "Cuir Nubuck Hydrofuge", "Couro Nobuck Hidrofugado"},
	"Cuero Liso HIDRO Anti-llamas": {"Cuero Liso HIDRO Anti-llamas", "Hydro Smooth Flame-Retardant Leather", "Cuir Lisse HYDRO Anti-Flammes", "Couro Liso HIDRO Anti-Chamas"},
	// Disipativo De Energía
	"Disipativo de Energía":            {"Disipativo de Energía", "Energy Dissipation", "Dissipation d'Énergie", "Dissipador de Energia"},
	"ISO 20345 14.000V":                {"ISO 20345 14.000V", "ISO 20345 14,000V", "ISO 20345 14 000V", "ISO 20345 14.000V"},
	"ASTM 2413 18.000V":                {"ASTM 2413 18.000V", "ASTM 2413 18,000V", "ASTM 2413 18 000V", "ASTM 2413 18.000V"},
	"ABNT NBR 16603-2017 500V":         {"ABNT NBR 16603-2017 500V", "ABNT NBR 16603-2017 500V", "ABNT NBR 16603-2017 500V", "ABNT NBR 16603-2017 500V"},
	"ISO 20345 14.000V ANT Conductivo": {"ISO 20345 14.000V ANT Conductivo", "ISO 20345 14,000V ANT Conductive", "ISO 20345 14 000V ANT Conducteur", "ISO 20345 14.000V ANT Condutivo"},
	// Suela
	"Suela":                {"Suela", "Sole", "Semelle", "Solado"},
	"Bidensidad PU":        {"Bidensidad PU", "Dual-Density PU", "PU Bidensité", "Bidensidade PU"},
	"Bidensidad PU Caucho": {"Bidensidad PU Caucho", "Dual-Density PU Rubber", "PU Caoutchouc Bidensité", "Bidensidade PU Borracha"},
	"Monodensidad Caucho":  {"Monodensidad Caucho", "Single-Density Rubber", "Caoutchouc Monodensité", "Monodensidade Borracha"},
	// Normativa
	"Normativa":                        {"Normativa", "Standards", "Normes", "Normas"},
	"ASTM F2413":                       {"ASTM F2413", "ASTM F2413", "ASTM F2413", "ASTM F2413"},
	"ISO 20345":                        {"ISO 20345", "ISO 20345", "ISO 20345", "ISO 20345"},
	"ISO 20347":                        {"ISO 20347", "ISO 20347", "ISO 20347", "ISO 20347"},
	"ABNT NBR 16.603:2017 500V - SECO": {"ABNT NBR 16.603:2017 500V - SECO", "ABNT NBR 16.603:2017 500V - DRY", "ABNT NBR 16.603:2017 500V - SEC", "ABNT NBR 16.603:2017 500V - SECO"},
	// Cierre
	"Cierre":        {"Cierre", "Closure", "Fermeture", "Fechamento"},
	"Sin Cordones":  {"Sin Cordones", "Laceless", "Sans Lacets", "Sem Cadarço"},
	"Con Cordones":  {"Con Cordones", "Lace-Up", "Avec Lacets", "Com Cadarço"},
	"De meter":      {"De meter", "Slip-On", "À Enfiler", "De Calçar"},
	"Zipper":        {"Cremallera", "Zipper", "Fermeture Éclair", "Zíper"},
	"Cierre Velcro": {"Cierre Velcro", "Velcro Closure", "Fermeture Velcro", "Fechamento Velcro"},
	// Color
	"Color":        {"Color", "Color", "Couleur", "Cor"},
	"Negro":        {"Negro", "Black", "Noir", "Preto"},
	"Blanco":       {"Blanco", "White", "Blanc", "Branco"},
	"Marron":       {"Marrón", "Brown", "Marron", "Marrom"},
	"Marrón":       {"Marrón", "Brown", "Marron", "Marrom"},
	"Café":         {"Café", "Coffee", "Café", "Café"},
	"Verde Musgo":  {"Verde Musgo", "Moss Green", "Vert Mousse", "Verde Musgo"},
	"Gris":         {"Gris", "Gray", "Gris", "Cinza"},
	"Azul Marino":  {"Azul Marino", "Navy Blue", "Bleu Marine", "Azul Marinho"},
	"Marron Claro": {"Marrón Claro", "Light Brown", "Marron Clair", "Marrom Claro"},
	"Dark Brown":   {"Marrón Oscuro", "Dark Brown", "Marron Foncé", "Marrom Escuro"},
	"Grafite":      {"Grafito", "Graphite", "Graphite", "Grafite"},
	"Marron Taupe": {"Marrón Taupe", "Taupe Brown", "Marron Taupe", "Marrom Taupe"},
	"Rojo":         {"Rojo", "Red", "Jaune", "Vermelho"},
	"Castor":       {"Castor", "Beaver", "Castor", "Castor"},
	"Amarillo":     {"Amarillo", "Yellow", "Jaune", "Amarelo"},
	// Segmento
	"Segmento":       {"Segmento", "Segment", "Segment", "Segmento"},
	"Agrícola":       {"Agrícola", "Agricultural", "Agricole", "Agrícola"},
	"Alimentaria":    {"Alimentaria", "Food Industry", "Alimentaire", "Alimentícia"},
	"Producción":     {"Producción", "Production", "Production", "Produção"},
	"Administrativo": {"Administrativo", "Administrative", "Administratif", "Administrativo"},
	"Construcción":   {"Construcción", "Construction", "Construction", "Construção"},
	"Electricista":   {"Electricista", "Electrician", "Électricien", "Eletricista"},
	"Astillero":      {"Astillero", "Shipyard", "Chantier Naval", "Estaleiro"},
	"Limpieza":       {"Limpieza", "Cleaning", "Nettoyage", "Limpeza"},
	"Madereras":      {"Madereras", "Lumber", "Bois", "Madeireiras"},
	"Metalurgia":     {"Metalurgia", "Metallurgy", "Métallurgie", "Metalurgia"},
	"Militares":      {"Militares", "Military", "Militaires", "Militares"},
	"Mineria":        {"Minería", "Mining", "Minière", "Mineração"},
	"Montadoras":     {"Montadoras", "Assembly", "Montage", "Montadoras"},
	"Mensajeria":     {"Mensajería", "Courier", "Messagerie", "Mensageria"},
	"Petroquimicos":  {"Petroquímicos", "Petrochemical", "Pétrochimique", "Petroquímicos"},
	"Rescate":        {"Rescate", "Rescue", "Sauvetage", "Resgate"},
	"Salud":          {"Salud", "Healthcare", "Santé", "Saúde"},
	"Siderurgia":     {"Siderurgia", "Steel Industry", "Sidérurgie", "Siderurgia"},
	"Trekking":       {"Trekking", "Trekking", "Randonnée", "Trekking"},
	"Multiservicios": {"Multiservicios", "Multi-Service", "Multi-Services", "Multiserviços"},
	"Agroindustria":  {"Agroindustria", "Agribusiness", "Agro-Industrie", "Agroindústria"},
	// Economías Circulares
	"Materiales Economías Circulares": {"Materiales Economías Circulares", "Circular Economy Materials", "Matériaux Économie Circulaire", "Materiais Economias Circulares"},
	"Economías":                       {"Economías", "Economies", "Économies", "Economias"},
	// Plantilla Interna
	"Plantilla Interna":    {"Plantilla Interna", "Insole", "Semelle Intérieure", "Palmilha Interna"},
	"Poliuretano":          {"Poliuretano", "Polyurethane", "Polyuréthane", "Poliuretano"},
	"Etilvinilacetato":     {"Etilvinilacetato", "Ethylene-Vinyl Acetate", "Éthylène-Acétate de Vinyle", "Etilvinilacetato"},
	"Etilvinilacetato ANT": {"Etilvinilacetato ANT", "Ethylene-Vinyl Acetate ANT", "Éthylène-Acétate de Vinyle ANT", "Etilvinilacetato ANT"},
	// Riesgos
	"Riesgo":           {"Riesgo", "Risk", "Risque", "Risco"},
	"Riesgos":          {"Riesgos", "Risks", "Risques", "Riscos"},
	"Alta Temperatura": {"Alta Temperatura", "High Temperature", "Haute Température", "Alta Temperatura"},
	"Ambiente Frio":    {"Ambiente Frío", "Cold Environment", "Environnement Froid", "Ambiente Frio"},
	"Ambiente Frío":    {"Ambiente Frío", "Cold Environment", "Environnement Froid", "Ambiente Frio"},
	"Shock":            {"Choque", "Shock", "Choc", "Choque"},
	"Estática":         {"Estática", "Static", "Statique", "Estática"},
	"Esguince":         {"Esguince", "Sprain", "Entorse", "Entorse"},
	"Punción Plantar":  {"Punción Plantar", "Puncture", "Perforation", "Perfuração Plantar"},
	"Puncin Plantar":   {"Punción Plantar", "Puncture", "Perforation", "Perfuração Plantar"},
	"Humedad":          {"Humedad", "Humidity", "Humidité", "Umidade"},
	"Piso Resbaladizo": {"Piso Resbaladizo", "Slippery Floor", "Sol Glissant", "Piso Escorregadio"},
	"Caída Objetos":    {"Caída Objetos", "Falling Objects", "Chute d'Objets", "Queda de Objetos"},
	"Cada Objetos":     {"Caída Objetos", "Falling Objects", "Chute d'Objets", "Queda de Objetos"},
	"Ocupacional":      {"Ocupacional", "Occupational", "Professionnel", "Ocupacional"},
	"Seguridad":        {"Seguridad", "Safety", "Sécurité", "Segurança"},
	"Polimerico":       {"Polimérico", "Polymeric", "Polymérique", "Polimérico"},
	"Químicos":         {"Químicos", "Chemicals", "Chimiques", "Químicos"},
	"Qumicos":          {"Químicos", "Chemicals", "Chimiques", "Químicos"},
	// Filter Labels
	"Plantilla": {"Plantilla", "Insole", "Semelle", "Palmilha"},
	"Calzados":  {"Calzados", "Footwear", "Chaussures", "Calçados"},
	"Punteras":  {"Punteras", "Toe Caps", "Embouts", "Biqueiras"},
}

var ui = map[Language]map[string]string{
	Spanish: {
		"Dashboard":                         "Dashboard",
		"Pedidos":                           "Pedidos",
		"Productos":                         "Productos",
		"Carrito":                           "Carrito",
		"Salir":                             "Salir",
		"Hola":                              "Hola",
		"Especificaciones":                  "Especificaciones",
		"Tallas":                            "Tallas",
		"Cant.":                             "Cant.",
		"Añadir a tu pedido":                "Añadir a tu pedido",
		"Volver":                            "Volver",
		"Descargar ficha":                   "Descargar ficha",
		"Valor":                             "Valor",
		"Producto no encontrado":            "Producto no encontrado",
		"Atención":                          "Atención",
		"Seleccione al menos una cantidad.": "Seleccione al menos una cantidad.",
		"Éxito":                             "Éxito",
		"Productos agregados al carrito.":   "Productos agregados al carrito.",
		"Error":                             "Error",
		"Hubo un problema al agregar al carrito.": "Hubo un problema al agregar al carrito.",
		"Tallas Marluvas Composite":               "Tallas Marluvas Composite",
		"Buscar productos...":                     "Buscar productos...",
		"Filtrar por":                             "Filtrar por",
		"Mi Carrito":                              "Mi Carrito",
		"Tu carrito está vacío":                   "Tu carrito está vacío",
		"Empieza a agregar productos":             "Empieza a agregar productos",
		"Producto":                                "Producto",
		"Cantidad":                                "Cantidad",
		"Precio Unit.":                            "Precio Unit.",
		"Total":                                   "Total",
		"Subtotal":                                "Subtotal",
		"Confirmar Pedido":                        "Confirmar Pedido",
		"Eliminar":                                "Eliminar",
		"Confirmar":                               "Confirmar",
		"¿Eliminar este producto?":                "¿Eliminar este producto?",
		"Eliminar producto":                       "Eliminar producto",
		"¿Estás seguro de que deseas eliminar este producto del carrito?": "¿Estás seguro de que deseas eliminar este producto del carrito?",
		"Eliminado":                               "Eliminado",
		"No se pudo eliminar":                     "No se pudo eliminar",
		"Falló la conexión al eliminar":           "Falló la conexión al eliminar",
		"No se pudo actualizar la cantidad":       "No se pudo actualizar la cantidad",
		"Falló la actualización de cantidad":      "Falló la actualización de cantidad",
		"No se encontró información del carrito":  "No se encontró información del carrito",
		"Agrega productos antes de comprar":       "Agrega productos antes de comprar",
		"Compra realizada con éxito":              "Compra realizada con éxito",
		"No se pudo completar la compra":          "No se pudo completar la compra",
		"Falló la conexión al procesar la compra": "Falló la conexión al procesar la compra",
		"Cancelar":          "Cancelar",
		"Pedido confirmado": "Pedido confirmado",
		"Tu pedido ha sido confirmado exitosamente.": "Tu pedido ha sido confirmado exitosamente.",
		"Mis Pedidos":                 "Mis Pedidos",
		"No tienes pedidos":           "No tienes pedidos",
		"Tus pedidos aparecerán aquí": "Tus pedidos aparecerán aquí",
		"Pedido":                      "Pedido",
		"Fecha":                       "Fecha",
		"Estado":                      "Estado",
		"Ver detalle":                 "Ver detalle",
		"Iniciar Sesión":              "Iniciar Sesión",
		"Correo electrónico":          "Correo electrónico",
		"Contraseña":                  "Contraseña",
		"Ingresar":                    "Ingresar",
		"Credenciales incorrectas":    "Credenciales incorrectas",
		"Cargando...":                 "Cargando...",
		"Error al cargar":             "Error al cargar",
		"No se pudo cargar la página": "No se pudo cargar la página",
		"Reintentar":                  "Reintentar",
		"Rastreo":                     "Rastreo",
		"Cargando rastreo...":         "Cargando rastreo...",
		"No se pudo cargar la página de rastreo": "No se pudo cargar la página de rastreo",
		"Creación":                "Creación",
		"Crédito":                 "Crédito",
		"Producción":              "Producción",
		"Preparación":             "Preparación",
		"Despacho":                "Despacho",
		"Tránsito":                "Tránsito",
		"En Destino":              "En Destino",
		"Confirmado":              "Confirmado",
		"Archivados":              "Archivados",
		"Pagado":                  "Pagado",
		"Otros":                   "Otros",
		"Operador":                "Operador",
		"Cliente":                 "Cliente",
		"Clientes":                "Clientes",
		"Actualización de Pedido": "Actualización de Pedido",
		"El pedido %s ha recibido una actualización.": "El pedido %s ha recibido una actualización.",
	},
	English: {
		"Dashboard":                         "Dashboard",
		"Pedidos":                           "Orders",
		"Productos":                         "Products",
		"Carrito":                           "Cart",
		"Salir":                             "Logout",
		"Hola":                              "Hello",
		"Especificaciones":                  "Specifications",
		"Tallas":                            "Sizes",
		"Cant.":                             "Qty.",
		"Añadir a tu pedido":                "Add to Order",
		"Volver":                            "Back",
		"Descargar ficha":                   "Download Datasheet",
		"Valor":                             "Price",
		"Producto no encontrado":            "Product not found",
		"Atención":                          "Attention",
		"Seleccione al menos una cantidad.": "Please select at least one quantity.",
		"Éxito":                             "Success",
		"Productos agregados al carrito.":   "Products added to cart.",
		"Error":                             "Error",
		"Hubo un problema al agregar al carrito.": "There was a problem adding to cart.",
		"Tallas Marluvas Composite":               "Marluvas Composite Sizes",
		"Buscar productos...":                     "Search products...",
		"Filtrar por":                             "Filter by",
		"Mi Carrito":                              "My Cart",
		"Tu carrito está vacío":                   "Your cart is empty",
		"Empieza a agregar productos":             "Start adding products",
		"Producto":                                "Product",
		"Cantidad":                                "Quantity",
		"Precio Unit.":                            "Unit Price",
		"Total":                                   "Total",
		"Subtotal":                                "Subtotal",
		"Confirmar Pedido":                        "Confirm Order",
		"Eliminar":                                "Delete",
		"Confirmar":                               "Confirm",
		"¿Eliminar este producto?":                "Delete this product?",
		"Eliminar producto":                       "Delete Product",
		"¿Estás seguro de que deseas eliminar este producto del carrito?": "Are you sure you want to remove this product from the cart?",
		"Eliminado":                               "Deleted",
		"No se pudo eliminar":                     "Could not delete",
		"Falló la conexión al eliminar":           "Deletion connection failed",
		"No se pudo actualizar la cantidad":       "Could not update quantity",
		"Falló la actualización de cantidad":      "Quantity update failed",
		"No se encontró información del carrito":  "Cart information not found",
		"Agrega productos antes de comprar":       "Add products before checking out",
		"Compra realizada con éxito":              "Purchase completed successfully",
		"No se pudo completar la compra":          "Could not complete purchase",
		"Falló la conexión al procesar la compra": "Connection failed while processing purchase",
		"Cancelar":          "Cancel",
		"Pedido confirmado": "Order confirmed",
		"Tu pedido ha sido confirmado exitosamente.": "Your order has been confirmed successfully.",
		"Mis Pedidos":                 "My Orders",
		"No tienes pedidos":           "No orders",
		"Tus pedidos aparecerán aquí": "Your orders will appear here",
		"Pedido":                      "Order",
		"Fecha":                       "Date",
		"Estado":                      "Status",
		"Ver detalle":                 "View details",
		"Iniciar Sesión":              "Sign In",
		"Correo electrónico":          "Email",
		"Contraseña":                  "Password",
		"Ingresar":                    "Sign In",
		"Credenciales incorrectas":    "Invalid credentials",
		"Cargando...":                 "Loading...",
		"Error al cargar":             "Loading error",
		"No se pudo cargar la página": "Could not load page",
		"Reintentar":                  "Retry",
		"Rastreo":                     "Tracking",
		"Cargando rastreo...":         "Loading tracking...",
		"No se pudo cargar la página de rastreo": "Could not load tracking page",
		"Creación":                "Creation",
		"Crédito":                 "Credit",
		"Producción":              "Production",
		"Preparación":             "Preparation",
		"Despacho":                "Dispatch",
		"Tránsito":                "In Transit",
		"En Destino":              "Delivered",
		"Confirmado":              "Confirmed",
		"Archivados":              "Archived",
		"Pagado":                  "Paid",
		"Otros":                   "Others",
		"Operador":                "Operator",
		"Cliente":                 "Customer",
		"Clientes":                "Customers",
		"Tu Pedido":               "Your Order",
		"Buscar pedido...":        "Search order...",
		"OC":                      "PO",
		"SAP":                     "SAP",
		"Proforma":                "Proforma",
		"Proforma Muito Work":     "MWT Proforma",
		"Comprar":                 "Checkout",
		"Cant Total":              "Total Qty",
		"un.":                     "ea.",
		"Actualización de Pedido": "Order Update",
		"El pedido %s ha recibido una actualización.": "Order %s has received an update.",
	},
	French: {
		"Dashboard":                         "Tableau de Bord",
		"Pedidos":                           "Commandes",
		"Productos":                         "Produits",
		"Carrito":                           "Panier",
		"Salir":                             "Déconnexion",
		"Hola":                              "Bonjour",
		"Especificaciones":                  "Spécifications",
		"Tallas":                            "Tailles",
		"Cant.":                             "Qté.",
		"Añadir a tu pedido":                "Ajouter à la Commande",
		"Volver":                            "Retour",
		"Descargar ficha":                   "Télécharger Fiche",
		"Valor":                             "Prix",
		"Producto no encontrado":            "Produit non trouvé",
		"Atención":                          "Attention",
		"Seleccione al menos una cantidad.": "Veuillez sélectionner au moins une quantité.",
		"Éxito":                             "Succès",
		"Productos agregados al carrito.":   "Produits ajoutés au panier.",
		"Error":                             "Erreur",
		"Hubo un problema al agregar al carrito.": "Un problème est survenu lors de l'ajout au panier.",
		"Tallas Marluvas Composite":               "Tailles Marluvas Composite",
		"Buscar productos...":                     "Rechercher produits...",
		"Filtrar por":                             "Filtrer par",
		"Mi Carrito":                              "Mon Panier",
		"Tu carrito está vacío":                   "Votre panier est vide",
		"Empieza a agregar productos":             "Commencez à ajouter des produits",
		"Producto":                                "Produit",
		"Cantidad":                                "Quantité",
		"Precio Unit.":                            "Prix Unit.",
		"Total":                                   "Total",
		"Subtotal":                                "Sous-total",
		"Confirmar Pedido":                        "Confirmer Commande",
		"Eliminar":                                "Supprimer",
		"Confirmar":                               "Confirmer",
		"¿Eliminar este producto?":                "Supprimer ce produit?",
		"Eliminar producto":                       "Supprimer le produit",
		"¿Estás seguro de que deseas eliminar este producto del carrito?": "Êtes-vous sûr de vouloir supprimer ce produit du panier?",
		"Eliminado":                               "Supprimé",
		"No se pudo eliminar":                     "Impossible de supprimer",
		"Falló la conexión al eliminar":           "Échec de la connexion lors de la suppression",
		"No se pudo actualizar la cantidad":       "Impossible de mettre à jour la quantité",
		"Falló la actualización de cantidad":      "Échec de la mise à jour de la quantité",
		"No se encontró información del carrito":  "Informations sur le panier introuvables",
		"Agrega productos antes de comprar":       "Ajoutez des produits avant d'acheter",
		"Compra realizada con éxito":              "Achat effectué avec succès",
		"No se pudo completar la compra":          "Impossible de terminer l'achat",
		"Falló la conexión al procesar la compra": "Échec de la connexion lors du traitement de l'achat",
		"Cancelar":          "Annuler",
		"Pedido confirmado": "Commande confirmée",
		"Tu pedido ha sido confirmado exitosamente.": "Votre commande a été confirmée avec succès.",
		"Mis Pedidos":                 "Mes Commandes",
		"No tienes pedidos":           "Aucune commande",
		"Tus pedidos aparecerán aquí": "Vos commandes apparaîtront ici",
		"Pedido":                      "Commande",
		"Fecha":                       "Date",
		"Estado":                      "Statut",
		"Ver detalle":                 "Voir détails",
		"Iniciar Sesión":              "Se Connecter",
		"Correo electrónico":          "Email",
		"Contraseña":                  "Mot de passe",
		"Ingresar":                    "Connexion",
		"Credenciales incorrectas":    "Identifiants invalides",
		"Cargando...":                 "Chargement...",
		"Error al cargar":             "Erreur de chargement",
		"No se pudo cargar la página": "Impossible de charger la page",
		"Reintentar":                  "Réessayer",
		"Rastreo":                     "Suivi",
		"Cargando rastreo...":         "Chargement du suivi...",
		"No se pudo cargar la página de rastreo": "Impossible de charger la page de suivi",
		"Creación":                "Création",
		"Crédito":                 "Crédit",
		"Producción":              "Production",
		"Preparación":             "Préparation",
		"Despacho":                "Expédition",
		"Tránsito":                "En Transit",
		"En Destino":              "Livré",
		"Confirmado":              "Confirmé",
		"Archivados":              "Archivés",
		"Pagado":                  "Payé",
		"Otros":                   "Autres",
		"Operador":                "Opérateur",
		"Cliente":                 "Client",
		"Clientes":                "Clients",
		"Tu Pedido":               "Votre Commande",
		"Buscar pedido...":        "Rechercher commande...",
		"OC":                      "BC",
		"SAP":                     "SAP",
		"Proforma":                "Proforma",
		"Proforma Muito Work":     "Proforma MWT",
		"Comprar":                 "Commander",
		"Cant Total":              "Qté Totale",
		"un.":                     "un.",
		"Actualización de Pedido": "Mise à jour de commande",
		"El pedido %s ha recibido una actualización.": "La commande %s a reçu une mise à jour.",
	},
	Portuguese: {
		"Dashboard":                         "Painel",
		"Pedidos":                           "Pedidos",
		"Productos":                         "Produtos",
		"Carrito":                           "Carrinho",
		"Salir":                             "Sair",
		"Hola":                              "Olá",
		"Especificaciones":                  "Especificações",
		"Tallas":                            "Tamanhos",
		"Cant.":                             "Qtd.",
		"Añadir a tu pedido":                "Adicionar ao Pedido",
		"Volver":                            "Voltar",
		"Descargar ficha":                   "Baixar Ficha",
		"Valor":                             "Valor",
		"Producto no encontrado":            "Produto não encontrado",
		"Atención":                          "Atenção",
		"Seleccione al menos una cantidad.": "Por favor, selecione pelo menos uma quantidade.",
		"Éxito":                             "Sucesso",
		"Productos agregados al carrito.":   "Produtos adicionados ao carrinho.",
		"Error":                             "Erro",
		"Hubo un problema al agregar al carrito.": "Houve um problema ao adicionar ao carrinho.",
		"Tallas Marluvas Composite":               "Tamanhos Marluvas Composite",
		"Buscar productos...":                     "Buscar produtos...",
		"Filtrar por":                             "Filtrar por",
		"Mi Carrito":                              "Meu Carrinho",
		"Tu carrito está vacío":                   "Seu carrinho está vazio",
		"Empieza a agregar productos":             "Comece a adicionar produtos",
		"Producto":                                "Produto",
		"Cantidad":                                "Quantidade",
		"Precio Unit.":                            "Preço Unit.",
		"Total":                                   "Total",
		"Subtotal":                                "Subtotal",
		"Confirmar Pedido":                        "Confirmar Pedido",
		"Eliminar":                                "Excluir",
		"Confirmar":                               "Confirmar",
		"¿Eliminar este producto?":                "Excluir este produto?",
		"Eliminar producto":                       "Excluir produto",
		"¿Estás seguro de que deseas eliminar este producto del carrito?": "Tem certeza de que deseja excluir este produto do carrinho?",
		"Eliminado":                               "Excluído",
		"No se pudo eliminar":                     "Não foi possível excluir",
		"Falló la conexión al eliminar":           "Falha na conexão ao excluir",
		"No se pudo actualizar la cantidad":       "Não foi possível atualizar a quantidade",
		"Falló la actualización de cantidad":      "Falha na atualização da quantidade",
		"No se encontró información del carrito":  "Informações do carrinho não encontradas",
		"Agrega productos antes de comprar":       "Adicione produtos antes de comprar",
		"Compra realizada con éxito":              "Compra concluída com sucesso",
		"No se pudo completar la compra":          "Não foi possível concluir a compra",
		"Falló la conexión al procesar la compra": "Falha na conexão ao processar a compra",
		"Cancelar":          "Cancelar",
		"Pedido confirmado": "Pedido confirmado",
		"Tu pedido ha sido confirmado exitosamente.": "Seu pedido foi confirmado com sucesso.",
		"Mis Pedidos":                 "Meus Pedidos",
		"No tienes pedidos":           "Sem pedidos",
		"Tus pedidos aparecerán aquí": "Seus pedidos aparecerão aqui",
		"Pedido":                      "Pedido",
		"Fecha":                       "Data",
		"Estado":                      "Status",
		"Ver detalle":                 "Ver detalhes",
		"Iniciar Sesión":              "Entrar",
		"Correo electrónico":          "E-mail",
		"Contraseña":                  "Senha",
		"Ingresar":                    "Entrar",
		"Credenciales incorrectas":    "Credenciais inválidas",
		"Cargando...":                 "Carregando...",
		"Error al cargar":             "Erro ao carregar",
		"No se pudo cargar la página": "Não foi possível carregar a página",
		"Reintentar":                  "Tentar novamente",
		"Rastreo":                     "Rastreamento",
		"Cargando rastreo...":         "Carregando rastreamento...",
		"No se pudo cargar la página de rastreo": "Não foi possível carregar a página de rastreamento",
		"Creación":                "Criação",
		"Crédito":                 "Crédito",
		"Producción":              "Produção",
		"Preparación":             "Preparação",
		"Despacho":                "Envio",
		"Tránsito":                "Em Trânsito",
		"En Destino":              "Entregue",
		"Confirmado":              "Confirmado",
		"Archivados":              "Arquivados",
		"Pagado":                  "Pago",
		"Otros":                   "Outros",
		"Operador":                "Operador",
		"Cliente":                 "Cliente",
		"Clientes":                "Clientes",
		"Tu Pedido":               "Seu Pedido",
		"Buscar pedido...":        "Buscar pedido...",
		"OC":                      "OC",
		"SAP":                     "SAP",
		"Proforma":                "Proforma",
		"Proforma Muito Work":     "Proforma MWT",
		"Comprar":                 "Comprar",
		"Cant Total":              "Qtd Total",
		"un.":                     "un.",
		"Actualización de Pedido": "Atualização de Pedido",
		"El pedido %s ha recibido una actualización.": "O pedido %s recebeu uma atualização.",
	},
}
